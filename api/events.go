package api

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/hatcher/genui/pkg/hertzx"
	"github.com/hatcher/genui/pkg/logs"
	"github.com/hatcher/genui/pkg/pubsub"
	"github.com/hatcher/genui/todo"
)

const (
	todosEventName = "todos"
	pingEventName  = "ping"
	pingInterval   = 30 * time.Second
)

// handleTodoEvents streams the current list, then every replacement of it.
func (s *Server) handleTodoEvents(ctx context.Context, c *app.RequestContext) {
	listID := hertzx.DefaultQuery(c, "listId", todo.DefaultListID)

	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := s.events.Subscribe(subCtx)

	current, err := s.todos.Fetch(ctx, listID)
	if err != nil {
		hertzx.Fail(c, err)
		return
	}

	sender := hertzx.NewSseSender(c)
	send := func(l todo.List) error {
		return sender.SendJSON(todosEventName, l.UpdatedAt.Format(time.RFC3339Nano), l)
	}
	if err := send(todo.List{ID: listID, Items: current.Items}); err != nil {
		return
	}

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()
	err = pumpEvents(listID, events, ping.C, send, func() error {
		return sender.SendJSON(pingEventName, "", map[string]string{"listId": listID})
	})
	logs.CtxDebugf(ctx, "todo event stream for %s closed: %v", listID, err)
}

// pumpEvents forwards events of listID to send until the feed closes or a
// write fails.
func pumpEvents(listID string, events <-chan pubsub.Event[todo.List], ping <-chan time.Time,
	send func(todo.List) error, sendPing func() error) error {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Payload.ID != listID {
				continue
			}
			if err := send(ev.Payload); err != nil {
				return err
			}
		case <-ping:
			if err := sendPing(); err != nil {
				return err
			}
		}
	}
}
