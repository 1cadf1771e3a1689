package api

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/hatcher/genui/chart"
	"github.com/hatcher/genui/pkg/hertzx"
	"github.com/hatcher/genui/pkg/logs"
	"github.com/hatcher/genui/pkg/resp"
	"github.com/hatcher/genui/todo"
)

type categoriesResponse struct {
	Categories []chart.Template `json:"categories"`
}

func (s *Server) handleRoot(ctx context.Context, c *app.RequestContext) {
	hertzx.Text(c, "genui server is running")
}

func (s *Server) handleHealth(ctx context.Context, c *app.RequestContext) {
	hertzx.OK(c, resp.Health{Status: "ok", Version: Version})
}

func (s *Server) handleChart(ctx context.Context, c *app.RequestContext) {
	hertzx.OK(c, s.charts.Generate(c.Query("topic")))
}

func (s *Server) handleCategories(ctx context.Context, c *app.RequestContext) {
	hertzx.OK(c, categoriesResponse{Categories: chart.Categories()})
}

func (s *Server) handleGetTodos(ctx context.Context, c *app.RequestContext) {
	res, err := s.todos.Fetch(ctx, hertzx.DefaultQuery(c, "listId", todo.DefaultListID))
	if err != nil {
		logs.CtxErrorf(ctx, "fetch todos failed: %v", err)
		hertzx.Fail(c, err)
		return
	}
	hertzx.OK(c, res)
}

func (s *Server) handleReplaceTodos(ctx context.Context, c *app.RequestContext) {
	body, err := c.Body()
	if err != nil {
		hertzx.Fail(c, todo.ErrInvalidJSON)
		return
	}
	req, err := todo.DecodeReplaceRequest(body)
	if err != nil {
		hertzx.Fail(c, err)
		return
	}
	res, err := s.todos.Replace(ctx, req)
	if err != nil {
		logs.CtxErrorf(ctx, "replace todos %s failed: %v", req.ListID, err)
		hertzx.Fail(c, err)
		return
	}
	hertzx.OK(c, res)
}
