package middleware

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"

	"github.com/hatcher/genui/pkg/logs"
)

const LogIDHeader = "X-Log-ID"

// SetLogIdMW tags every request with a log id, reusing the caller's
// X-Log-ID when present, and echoes it in the response.
func SetLogIdMW() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		logID := string(c.GetHeader(LogIDHeader))
		if logID == "" {
			logID = uuid.New().String()
		}
		ctx = logs.WithLogID(ctx, logID)

		c.Header(LogIDHeader, logID)
		c.Next(ctx)
	}
}
