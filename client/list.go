package client

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/hatcher/genui/todo"
)

const DefaultTitle = "Tasks"

// TodoList is the local state of the todo component. onChange, when set,
// runs after every edit with a copy of the items.
type TodoList struct {
	mu       sync.Mutex
	title    string
	items    []todo.Item
	onChange func(items []todo.Item)
}

func NewTodoList(title string, initial []todo.Item) *TodoList {
	if title == "" {
		title = DefaultTitle
	}
	items := make([]todo.Item, len(initial))
	copy(items, initial)
	return &TodoList{title: title, items: items}
}

func (l *TodoList) Title() string {
	return l.title
}

// OnChange registers the edit callback.
func (l *TodoList) OnChange(fn func(items []todo.Item)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = fn
}

// Add appends an item with a new id. Blank text is ignored.
func (l *TodoList) Add(text string) (todo.Item, bool) {
	if strings.TrimSpace(text) == "" {
		return todo.Item{}, false
	}
	item := todo.Item{ID: uuid.NewString(), Text: text}
	l.edit(func(items []todo.Item) ([]todo.Item, bool) {
		return append(items, item), true
	})
	return item, true
}

// Toggle flips completed on the item with id.
func (l *TodoList) Toggle(id string) bool {
	found := false
	l.edit(func(items []todo.Item) ([]todo.Item, bool) {
		for i := range items {
			if items[i].ID == id {
				items[i].Completed = !items[i].Completed
				found = true
			}
		}
		return items, found
	})
	return found
}

// Delete removes the item with id.
func (l *TodoList) Delete(id string) bool {
	found := false
	l.edit(func(items []todo.Item) ([]todo.Item, bool) {
		out := items[:0]
		for _, it := range items {
			if it.ID == id {
				found = true
				continue
			}
			out = append(out, it)
		}
		return out, found
	})
	return found
}

func (l *TodoList) Items() []todo.Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot()
}

// Done counts completed items.
func (l *TodoList) Done() (done, total int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, it := range l.items {
		if it.Completed {
			done++
		}
	}
	return done, len(l.items)
}

// edit applies fn and notifies the callback when fn reports a change.
func (l *TodoList) edit(fn func(items []todo.Item) ([]todo.Item, bool)) {
	l.mu.Lock()
	items, changed := fn(l.items)
	l.items = items
	snap, cb := l.snapshot(), l.onChange
	l.mu.Unlock()
	if changed && cb != nil {
		cb(snap)
	}
}

func (l *TodoList) snapshot() []todo.Item {
	out := make([]todo.Item, len(l.items))
	copy(out, l.items)
	return out
}
