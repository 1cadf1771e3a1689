package safego

import (
	"context"
	"runtime/debug"

	"github.com/hatcher/genui/pkg/logs"
)

// Recovery 捕获panic, must be called directly by defer.
func Recovery(ctx context.Context) {
	e := recover()
	if e == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	logs.CtxErrorf(ctx, "[Recovery] panic = %v\nstacktrace =\n%s", e, debug.Stack())
}
