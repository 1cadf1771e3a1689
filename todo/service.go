package todo

import (
	"context"
	"time"

	"github.com/tidwall/gjson"

	"github.com/hatcher/genui/pkg/logs"
	"github.com/hatcher/genui/pkg/pubsub"
	"github.com/hatcher/genui/pkg/resp"
)

var (
	ErrInvalidRequest = resp.ErrBadRequest.WithMessage("Items array is required")
	ErrInvalidJSON    = resp.ErrBadRequest.WithMessage("invalid json")
)

// ReplaceRequest is the POST /api/todos payload. A nil Items means the
// field was absent.
type ReplaceRequest struct {
	ListID string `json:"listId"`
	Title  string `json:"title"`
	Items  []Item `json:"items"`
}

type ReplaceResult struct {
	Success bool   `json:"success"`
	ListID  string `json:"listId"`
	Title   string `json:"title"`
	Count   int    `json:"count"`
}

// FetchResult is the GET /api/todos payload.
type FetchResult struct {
	ListID string `json:"listId"`
	Items  []Item `json:"items"`
}

// DecodeReplaceRequest checks that body is a JSON object whose items field
// is an array. Nothing else is validated: fields of the wrong type are read
// as strings or booleans, and non-object items become empty items.
func DecodeReplaceRequest(body []byte) (ReplaceRequest, error) {
	if !gjson.ValidBytes(body) {
		return ReplaceRequest{}, ErrInvalidJSON
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return ReplaceRequest{}, ErrInvalidJSON
	}
	items := doc.Get("items")
	if !items.IsArray() {
		return ReplaceRequest{}, ErrInvalidRequest
	}
	req := ReplaceRequest{
		ListID: doc.Get("listId").String(),
		Title:  doc.Get("title").String(),
		Items:  []Item{},
	}
	items.ForEach(func(_, v gjson.Result) bool {
		req.Items = append(req.Items, Item{
			ID:        v.Get("id").String(),
			Text:      v.Get("text").String(),
			Completed: v.Get("completed").Bool(),
		})
		return true
	})
	return req, nil
}

// Service applies the todo rules on top of a Store and announces every
// replaced list on its publisher.
type Service struct {
	store  Store
	events pubsub.Publisher[List]
	now    func() time.Time
}

type ServiceOption func(s *Service)

func WithPublisher(p pubsub.Publisher[List]) ServiceOption {
	return func(s *Service) {
		s.events = p
	}
}

func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(store Store, opts ...ServiceOption) *Service {
	s := &Service{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Fetch(ctx context.Context, listID string) (FetchResult, error) {
	listID = NormalizeListID(listID)
	l, err := s.store.Fetch(ctx, listID)
	if err != nil {
		return FetchResult{}, err
	}
	if l.Items == nil {
		l.Items = []Item{}
	}
	return FetchResult{ListID: listID, Items: l.Items}, nil
}

// Replace overwrites the list named by req. Without items it fails with
// ErrInvalidRequest and leaves the store alone.
func (s *Service) Replace(ctx context.Context, req ReplaceRequest) (ReplaceResult, error) {
	if req.Items == nil {
		return ReplaceResult{}, ErrInvalidRequest
	}
	l := List{
		ID:        NormalizeListID(req.ListID),
		Title:     req.Title,
		Items:     cloneItems(req.Items),
		UpdatedAt: s.now().UTC(),
	}
	if err := s.store.Replace(ctx, l); err != nil {
		return ReplaceResult{}, err
	}
	logs.CtxDebugf(ctx, "todo list %s replaced with %d items", l.ID, len(l.Items))
	if s.events != nil {
		s.events.Publish(pubsub.UpdatedEvent, l)
	}
	return ReplaceResult{Success: true, ListID: l.ID, Title: l.Title, Count: len(l.Items)}, nil
}
