package todo

import (
	"context"
	"time"
)

const DefaultListID = "default"

type Item struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// List is one stored todo list. Items keep insertion order.
type List struct {
	ID        string    `json:"listId"`
	Title     string    `json:"title"`
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store keeps at most one list per id; Replace overwrites it wholesale.
type Store interface {
	// Fetch returns the stored list, or an empty one when id is unknown.
	Fetch(ctx context.Context, listID string) (List, error)
	Replace(ctx context.Context, list List) error
	Close() error
}

// NormalizeListID maps an empty id to DefaultListID. Any other id, whitespace
// included, is kept as is.
func NormalizeListID(listID string) string {
	if listID == "" {
		return DefaultListID
	}
	return listID
}

func emptyList(listID string) List {
	return List{ID: listID, Items: []Item{}}
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

func (l List) clone() List {
	l.Items = cloneItems(l.Items)
	return l
}
