package httpx

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type HttpMethod string

const (
	GET    HttpMethod = http.MethodGet
	POST   HttpMethod = http.MethodPost
	PUT    HttpMethod = http.MethodPut
	DELETE HttpMethod = http.MethodDelete
)

func (m HttpMethod) String() string {
	return string(m)
}

type RequestOption struct {
	Method    HttpMethod
	Path      string
	Headers   map[string]string
	Body      interface{}
	Query     map[string]string
	PrintLog  bool
	RequestID string
}

type Option func(option *RequestOption)

func WithMethod(method HttpMethod) Option {
	return func(option *RequestOption) {
		option.Method = method
	}
}

func WithMethodGet() Option {
	return WithMethod(GET)
}

func WithMethodPost() Option {
	return WithMethod(POST)
}

func WithPath(path string) Option {
	return func(option *RequestOption) {
		option.Path = path
	}
}

func WithHeader(key, value string) Option {
	return func(option *RequestOption) {
		option.Headers[key] = value
	}
}

// WithBody sets the request body; []byte is sent as is, anything else as JSON.
func WithBody(body interface{}) Option {
	return func(option *RequestOption) {
		option.Body = body
	}
}

// WithQueryParam adds a query parameter; empty values are skipped.
func WithQueryParam(key, value string) Option {
	return func(option *RequestOption) {
		if value != "" {
			option.Query[key] = value
		}
	}
}

func WithPrintLog(printLog bool) Option {
	return func(option *RequestOption) {
		option.PrintLog = printLog
	}
}

func NewRequestOption(options ...Option) *RequestOption {
	option := &RequestOption{
		Method:    GET,
		Headers:   make(map[string]string),
		Query:     make(map[string]string),
		RequestID: uuid.New().String(),
	}
	for _, opt := range options {
		opt(option)
	}
	return option
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// StatusError reports a non-2xx answer.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, strings.TrimSpace(e.Body))
}

var sensitive = []string{"authorization", "cookie", "token", "password", "secret"}

func redactHeaders(headers map[string]string) map[string]string {
	clean := make(map[string]string, len(headers))
	for k, v := range headers {
		lower := strings.ToLower(k)
		clean[k] = v
		for _, s := range sensitive {
			if strings.Contains(lower, s) {
				clean[k] = "***REDACTED***"
				break
			}
		}
	}
	return clean
}
