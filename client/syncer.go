package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hatcher/genui/pkg/logs"
	"github.com/hatcher/genui/pkg/safego"
	"github.com/hatcher/genui/todo"
)

const (
	DefaultDebounce    = 500 * time.Millisecond
	defaultSaveTimeout = 10 * time.Second
)

// NewListID names a list the way the UI component does: list-<unix millis>.
func NewListID() string {
	return fmt.Sprintf("list-%d", time.Now().UnixMilli())
}

// Syncer debounces saves of one list: every Schedule restarts the delay and
// only the latest items are sent. Empty lists are never saved and failed
// saves are logged, not retried.
type Syncer struct {
	client *TodoClient
	listID string
	title  string
	delay  time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending []todo.Item
	dirty   bool
	stopped bool
	saving  bool
	onSaved func(todo.ReplaceResult, error)
}

func NewSyncer(client *TodoClient, listID, title string, delay time.Duration) *Syncer {
	if listID == "" {
		listID = NewListID()
	}
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Syncer{client: client, listID: listID, title: title, delay: delay}
}

func (s *Syncer) ListID() string {
	return s.listID
}

// OnSaved registers a callback invoked after every save attempt.
func (s *Syncer) OnSaved(fn func(todo.ReplaceResult, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSaved = fn
}

// Attach makes every edit of l schedule a save.
func (s *Syncer) Attach(l *TodoList) {
	l.OnChange(s.Schedule)
}

// Schedule records items as the latest state and restarts the delay.
func (s *Syncer) Schedule(items []todo.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.pending = items
	s.dirty = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fire)
}

// Saving reports whether a save is in flight.
func (s *Syncer) Saving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saving
}

func (s *Syncer) fire() {
	defer safego.Recovery(context.Background())
	ctx, cancel := context.WithTimeout(context.Background(), defaultSaveTimeout)
	defer cancel()
	if err := s.saveLatest(ctx); err != nil {
		logs.Errorf("failed to save todos %s: %v", s.listID, err)
	}
}

// Flush cancels the pending delay and saves the latest state now.
func (s *Syncer) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()
	return s.saveLatest(ctx)
}

// Stop drops any pending save. Later Schedule calls are ignored.
func (s *Syncer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	s.dirty = false
	if s.timer != nil {
		s.timer.Stop()
	}
}

func (s *Syncer) saveLatest(ctx context.Context) error {
	s.mu.Lock()
	if !s.dirty || len(s.pending) == 0 {
		s.dirty = false
		s.mu.Unlock()
		return nil
	}
	items := s.pending
	s.dirty = false
	s.saving = true
	s.mu.Unlock()

	res, err := s.client.Save(ctx, s.listID, s.title, items)

	s.mu.Lock()
	s.saving = false
	cb := s.onSaved
	s.mu.Unlock()
	if cb != nil {
		cb(res, err)
	}
	return err
}
