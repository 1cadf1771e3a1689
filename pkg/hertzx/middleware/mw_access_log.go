package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/hatcher/genui/pkg/logs"
)

const maxPrintLen = 2 * 1024

func AccessLogMW() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		c.Next(ctx)

		status := c.Response.StatusCode()
		path := string(c.Request.URI().PathOriginal())
		method := string(c.Request.Header.Method())

		handlerPath := strings.Split(c.HandlerName(), "/")
		handlerName := handlerPath[len(handlerPath)-1]

		line := fmt.Sprintf("| %d | %v | %s | %s | %s | %s",
			status, time.Since(start), c.ClientIP(), method, path, handlerName)
		switch {
		case status >= http.StatusInternalServerError:
			logs.CtxErrorf(ctx, "%s", line)
		case status >= http.StatusBadRequest:
			logs.CtxWarnf(ctx, "%s | %s", line, truncate(c.Response.Body()))
		default:
			logs.CtxInfof(ctx, "%s", line)
			if strings.HasPrefix(string(c.Response.Header.ContentType()), "application/json") {
				logs.CtxDebugf(ctx, "query: %s\nreq: %s\nresp: %s",
					c.Request.URI().QueryString(), truncate(c.Request.Body()), truncate(c.Response.Body()))
			}
		}
	}
}

func truncate(b []byte) string {
	if len(b) > maxPrintLen {
		b = b[:maxPrintLen]
	}
	return string(b)
}
