package todo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hatcher/genui/pkg/ormx"
)

type todoList struct {
	ListID    string    `gorm:"primaryKey;size:191"`
	Title     string    `gorm:"size:1024"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

type todoItem struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	ListID    string `gorm:"size:191;not null;index:idx_todo_item_list_seq,priority:1"`
	Seq       int    `gorm:"not null;index:idx_todo_item_list_seq,priority:2"`
	ItemID    string `gorm:"size:191"`
	Text      string `gorm:"type:text"`
	Completed bool
}

// DBStore keeps lists in two tables; Replace swaps the item rows of a list
// inside one transaction.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore migrates the schema and returns the store.
func NewDBStore(db *gorm.DB) (*DBStore, error) {
	if err := db.AutoMigrate(&todoList{}, &todoItem{}); err != nil {
		return nil, errors.WithMessage(err, "migrate todo tables")
	}
	return &DBStore{db: db}, nil
}

func (s *DBStore) Fetch(ctx context.Context, listID string) (List, error) {
	var head todoList
	err := s.db.WithContext(ctx).Where("list_id = ?", listID).Take(&head).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return emptyList(listID), nil
	}
	if err != nil {
		return List{}, errors.WithMessagef(err, "query todo list %s", listID)
	}
	var rows []todoItem
	if err := s.db.WithContext(ctx).Where("list_id = ?", listID).Order("seq").Find(&rows).Error; err != nil {
		return List{}, errors.WithMessagef(err, "query todo items of %s", listID)
	}
	l := List{ID: listID, Title: head.Title, UpdatedAt: head.UpdatedAt, Items: make([]Item, len(rows))}
	for i, r := range rows {
		l.Items[i] = Item{ID: r.ItemID, Text: r.Text, Completed: r.Completed}
	}
	return l, nil
}

func (s *DBStore) Replace(ctx context.Context, list List) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		head := todoList{ListID: list.ID, Title: list.Title, UpdatedAt: list.UpdatedAt}
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&head).Error; err != nil {
			return errors.WithMessage(err, "upsert list")
		}
		if err := tx.Where("list_id = ?", list.ID).Delete(&todoItem{}).Error; err != nil {
			return errors.WithMessage(err, "delete old items")
		}
		if len(list.Items) == 0 {
			return nil
		}
		rows := make([]todoItem, len(list.Items))
		for i, it := range list.Items {
			rows[i] = todoItem{ListID: list.ID, Seq: i, ItemID: it.ID, Text: it.Text, Completed: it.Completed}
		}
		return errors.WithMessage(tx.CreateInBatches(rows, 500).Error, "insert items")
	})
	return errors.WithMessagef(err, "replace todo list %s", list.ID)
}

func (s *DBStore) Close() error {
	return ormx.Close(s.db)
}
