package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/hatcher/genui/pkg/logs"
)

// Client 通用HTTP客户端工具
type Client struct {
	Client  *http.Client
	BaseUrl string
}

// NewClient 创建一个新的HTTPClient实例
func NewClient(baseUrl string, timeout time.Duration) *Client {
	return &Client{
		Client:  &http.Client{Timeout: timeout},
		BaseUrl: strings.TrimRight(baseUrl, "/"),
	}
}

// NewDefaultClient 创建一个新的HTTPClient实例，默认超时时间为10秒
func NewDefaultClient(baseUrl string) *Client {
	return NewClient(baseUrl, 10*time.Second)
}

func (c *Client) buildRequest(ctx context.Context, options *RequestOption) (*http.Request, error) {
	var body io.Reader
	if options.Body != nil {
		if raw, ok := options.Body.([]byte); ok {
			body = bytes.NewReader(raw)
		} else {
			data, err := json.Marshal(options.Body)
			if err != nil {
				return nil, errors.Wrap(err, "marshal request body")
			}
			body = bytes.NewReader(data)
			if _, set := options.Headers["Content-Type"]; !set {
				options.Headers["Content-Type"] = "application/json"
			}
		}
	}
	reqURL := c.BaseUrl + options.Path
	if len(options.Query) > 0 {
		params := url.Values{}
		for key, value := range options.Query {
			params.Add(key, value)
		}
		reqURL += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, options.Method.String(), reqURL, body)
	if err != nil {
		return nil, errors.Wrap(err, "create http request")
	}
	for key, value := range options.Headers {
		req.Header.Set(key, value)
	}
	req.Header.Set("X-Log-ID", options.RequestID)
	return req, nil
}

// Do sends the request and reads the whole body. Non-2xx answers are
// returned as a Response, not an error.
func (c *Client) Do(ctx context.Context, options *RequestOption) (*Response, error) {
	start := time.Now()
	req, err := c.buildRequest(ctx, options)
	if err != nil {
		return nil, err
	}
	if options.PrintLog {
		logs.Debugf("HTTP_REQUEST %s %s id=%s headers=%v", req.Method, req.URL, options.RequestID, redactHeaders(options.Headers))
	}
	res, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}
	if options.PrintLog {
		logs.Debugf("HTTP_RESPONSE id=%s status=%d duration=%v body=%s", options.RequestID, res.StatusCode, time.Since(start), data)
	}
	return &Response{StatusCode: res.StatusCode, Header: res.Header, Body: data}, nil
}

// DoJSON sends the request and decodes a 2xx JSON body into out. Other
// statuses yield a *StatusError.
func (c *Client) DoJSON(ctx context.Context, options *RequestOption, out interface{}) error {
	res, err := c.Do(ctx, options)
	if err != nil {
		return err
	}
	if !res.OK() {
		return &StatusError{StatusCode: res.StatusCode, Body: string(res.Body)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(res.Body, out); err != nil {
		return errors.Wrap(err, "decode response body")
	}
	return nil
}
