package pubsub

type EventType string

const (
	UpdatedEvent EventType = "updated"
)

type Event[T any] struct {
	Type    EventType
	Payload T
}

// Publisher is the write side of a Broker.
type Publisher[T any] interface {
	Publish(t EventType, payload T)
}
