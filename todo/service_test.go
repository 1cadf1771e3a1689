package todo

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hatcher/genui/pkg/pubsub"
	"github.com/hatcher/genui/pkg/resp"
)

func TestDecodeReplaceRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		want    ReplaceRequest
	}{
		{
			name: "full",
			body: `{"listId":"a","title":"T","items":[{"id":"1","text":"x","completed":false}]}`,
			want: ReplaceRequest{ListID: "a", Title: "T", Items: []Item{{ID: "1", Text: "x"}}},
		},
		{
			name: "empty items",
			body: `{"title":"T","items":[]}`,
			want: ReplaceRequest{Title: "T", Items: []Item{}},
		},
		{name: "missing items", body: `{"listId":"a","title":"T"}`, wantErr: ErrInvalidRequest},
		{name: "items null", body: `{"items":null}`, wantErr: ErrInvalidRequest},
		{name: "items object", body: `{"items":{"id":"1"}}`, wantErr: ErrInvalidRequest},
		{name: "items string", body: `{"items":"[]"}`, wantErr: ErrInvalidRequest},
		{name: "not json", body: `items=1`, wantErr: ErrInvalidJSON},
		{name: "json array", body: `[1,2]`, wantErr: ErrInvalidJSON},
		{
			name: "loose item types",
			body: `{"listId":"a","items":[{"id":1,"text":"x","completed":"true"},{"id":"2","completed":1}]}`,
			want: ReplaceRequest{ListID: "a", Items: []Item{{ID: "1", Text: "x", Completed: true}, {ID: "2", Completed: true}}},
		},
		{
			name: "non-object items",
			body: `{"items":[1,"x",null]}`,
			want: ReplaceRequest{Items: []Item{{}, {}, {}}},
		},
		{
			name: "numeric title",
			body: `{"title":5,"items":[]}`,
			want: ReplaceRequest{Title: "5", Items: []Item{}},
		},
		{
			name: "string completed false",
			body: `{"items":[{"id":"1","text":"x","completed":"false"}]}`,
			want: ReplaceRequest{Items: []Item{{ID: "1", Text: "x"}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeReplaceRequest([]byte(tt.body))
			if tt.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tt.wantErr))
				code, _ := resp.StatusOf(err)
				require.Equal(t, http.StatusBadRequest, code)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeReplaceRequestMessages(t *testing.T) {
	_, err := DecodeReplaceRequest([]byte(`{"title":"T"}`))
	_, msg := resp.StatusOf(err)
	require.Equal(t, "Items array is required", msg)

	_, err = DecodeReplaceRequest([]byte(`{`))
	_, msg = resp.StatusOf(err)
	require.Equal(t, "invalid json", msg)
}

func TestServiceReplaceThenFetch(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())

	res, err := svc.Replace(ctx, ReplaceRequest{ListID: "a", Title: "T", Items: []Item{{ID: "1", Text: "x"}}})
	require.NoError(t, err)
	require.Equal(t, ReplaceResult{Success: true, ListID: "a", Title: "T", Count: 1}, res)

	got, err := svc.Fetch(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, FetchResult{ListID: "a", Items: []Item{{ID: "1", Text: "x"}}}, got)
}

func TestServiceDefaultListID(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())

	res, err := svc.Replace(ctx, ReplaceRequest{Items: []Item{{ID: "1", Text: "x"}}})
	require.NoError(t, err)
	require.Equal(t, DefaultListID, res.ListID)

	got, err := svc.Fetch(ctx, "")
	require.NoError(t, err)
	require.Equal(t, DefaultListID, got.ListID)
	require.Len(t, got.Items, 1)
}

func TestServiceKeepsWhitespaceInListID(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())

	res, err := svc.Replace(ctx, ReplaceRequest{ListID: "a ", Items: []Item{{ID: "1", Text: "padded"}}})
	require.NoError(t, err)
	require.Equal(t, "a ", res.ListID)

	got, err := svc.Fetch(ctx, "a")
	require.NoError(t, err)
	require.Empty(t, got.Items)

	got, err = svc.Fetch(ctx, "a ")
	require.NoError(t, err)
	require.Equal(t, "a ", got.ListID)
	require.Equal(t, []Item{{ID: "1", Text: "padded"}}, got.Items)

	got, err = svc.Fetch(ctx, "  ")
	require.NoError(t, err)
	require.Equal(t, "  ", got.ListID)
	require.Empty(t, got.Items)
}

func TestServiceFetchUnknownIsEmpty(t *testing.T) {
	got, err := NewService(NewMemoryStore()).Fetch(context.Background(), "nope")
	require.NoError(t, err)
	require.Equal(t, "nope", got.ListID)
	require.NotNil(t, got.Items)
	require.Empty(t, got.Items)
}

func TestServiceRejectsMissingItems(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := NewService(store)

	_, err := svc.Replace(ctx, ReplaceRequest{ListID: "a", Items: []Item{{ID: "1", Text: "keep"}}})
	require.NoError(t, err)

	_, err = svc.Replace(ctx, ReplaceRequest{ListID: "a", Title: "T"})
	require.ErrorIs(t, err, ErrInvalidRequest)

	got, err := svc.Fetch(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, []Item{{ID: "1", Text: "keep"}}, got.Items)
}

type failingStore struct{ MemoryStore }

func (f *failingStore) Replace(context.Context, List) error {
	return errors.New("disk full")
}

func TestServiceStoreError(t *testing.T) {
	svc := NewService(&failingStore{})
	_, err := svc.Replace(context.Background(), ReplaceRequest{Items: []Item{}})
	require.EqualError(t, err, "disk full")
}

func TestServicePublishes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	broker := pubsub.NewBroker[List]()
	defer broker.Shutdown()
	events := broker.Subscribe(ctx)

	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	svc := NewService(NewMemoryStore(), WithPublisher(broker), WithClock(func() time.Time { return now }))
	_, err := svc.Replace(ctx, ReplaceRequest{ListID: "a", Title: "T", Items: []Item{{ID: "1", Text: "x"}}})
	require.NoError(t, err)

	select {
	case ev := <-events:
		require.Equal(t, pubsub.UpdatedEvent, ev.Type)
		require.Equal(t, "a", ev.Payload.ID)
		require.Equal(t, "T", ev.Payload.Title)
		require.Equal(t, now, ev.Payload.UpdatedAt)
		require.Len(t, ev.Payload.Items, 1)
	case <-time.After(time.Second):
		t.Fatal("no event published")
	}

	_, err = svc.Replace(ctx, ReplaceRequest{ListID: "a"})
	require.Error(t, err)
	select {
	case ev := <-events:
		t.Fatalf("unexpected event for rejected write: %v", ev)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestDecodeErrorsAreDistinct(t *testing.T) {
	_, err := DecodeReplaceRequest([]byte(`{`))
	require.ErrorIs(t, err, ErrInvalidJSON)
	require.NotErrorIs(t, err, ErrInvalidRequest)
	require.ErrorIs(t, err, resp.ErrBadRequest)

	_, err = DecodeReplaceRequest([]byte(`{"title":"T"}`))
	require.ErrorIs(t, err, ErrInvalidRequest)
	require.NotErrorIs(t, err, ErrInvalidJSON)
}
