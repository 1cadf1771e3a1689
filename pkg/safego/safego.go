package safego

import "context"

// Go runs f in a goroutine whose panic is logged instead of crashing the process.
func Go(ctx context.Context, f func()) {
	go func() {
		defer Recovery(ctx)
		f()
	}()
}
