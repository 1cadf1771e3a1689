// Package client is the Go side of the chat UI components: it fetches
// chart data and keeps a locally edited todo list in sync with the server.
package client

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/hatcher/genui/chart"
	"github.com/hatcher/genui/pkg/httpx"
	"github.com/hatcher/genui/todo"
)

var ErrChartUnavailable = errors.New("failed to fetch chart data")

type ChartClient struct {
	http *httpx.Client
}

func NewChartClient(baseURL string, timeout time.Duration) *ChartClient {
	return &ChartClient{http: httpx.NewClient(baseURL, timeout)}
}

// Fetch loads the chart for topic. Any non-2xx answer is ErrChartUnavailable.
func (c *ChartClient) Fetch(ctx context.Context, topic string) (chart.Chart, error) {
	var out chart.Chart
	err := c.http.DoJSON(ctx, httpx.NewRequestOption(
		httpx.WithMethodGet(),
		httpx.WithPath("/api/chart"),
		httpx.WithQueryParam("topic", topic),
	), &out)
	var se *httpx.StatusError
	if errors.As(err, &se) {
		return chart.Chart{}, errors.WithMessagef(ErrChartUnavailable, "status %d", se.StatusCode)
	}
	return out, err
}

type TodoClient struct {
	http *httpx.Client
}

func NewTodoClient(baseURL string, timeout time.Duration) *TodoClient {
	return &TodoClient{http: httpx.NewClient(baseURL, timeout)}
}

func (c *TodoClient) Get(ctx context.Context, listID string) (todo.FetchResult, error) {
	var out todo.FetchResult
	err := c.http.DoJSON(ctx, httpx.NewRequestOption(
		httpx.WithMethodGet(),
		httpx.WithPath("/api/todos"),
		httpx.WithQueryParam("listId", listID),
	), &out)
	return out, errors.WithMessagef(err, "get todo list %s", listID)
}

func (c *TodoClient) Save(ctx context.Context, listID, title string, items []todo.Item) (todo.ReplaceResult, error) {
	if items == nil {
		items = []todo.Item{}
	}
	var out todo.ReplaceResult
	err := c.http.DoJSON(ctx, httpx.NewRequestOption(
		httpx.WithMethodPost(),
		httpx.WithPath("/api/todos"),
		httpx.WithBody(todo.ReplaceRequest{ListID: listID, Title: title, Items: items}),
	), &out)
	return out, errors.WithMessagef(err, "save todo list %s", listID)
}
