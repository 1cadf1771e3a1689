package hertzx

import (
	"encoding/json"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/sse"
	"github.com/pkg/errors"
)

type SseSender struct {
	ss *sse.Stream
}

func NewSseSender(c *app.RequestContext) *SseSender {
	return &SseSender{ss: sse.NewStream(c)}
}

// Send 发送
func (s *SseSender) Send(event *sse.Event) error {
	return s.ss.Publish(event)
}

// SendJSON publishes data as a named event with a JSON payload.
func (s *SseSender) SendJSON(name, id string, data any) error {
	event, err := BuildDataEvent(data)
	if err != nil {
		return err
	}
	event.Event = name
	event.ID = id
	return s.Send(event)
}

// BuildDataEvent wraps data into an event. Strings and byte slices are sent
// verbatim, anything else as JSON.
func BuildDataEvent(data any) (*sse.Event, error) {
	switch v := data.(type) {
	case nil:
		return nil, errors.New("nil event data")
	case *sse.Event:
		return v, nil
	case string:
		return &sse.Event{Data: []byte(v)}, nil
	case []byte:
		return &sse.Event{Data: v}, nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "marshal event data")
	}
	return &sse.Event{Data: b}, nil
}
