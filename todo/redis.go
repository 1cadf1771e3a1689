package todo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/hatcher/genui/pkg/redisx"
)

const DefaultRedisKeyPrefix = "genui:todos:"

// RedisStore keeps one JSON value per list.
type RedisStore struct {
	client  redisx.Redis
	prefix  string
	ttl     time.Duration
	closeFn func() error
}

// NewRedisStore wraps client. A zero ttl keeps lists forever. closeFn, when
// set, is called by Close.
func NewRedisStore(client redisx.Redis, prefix string, ttl time.Duration, closeFn func() error) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl, closeFn: closeFn}
}

func (s *RedisStore) key(listID string) string {
	return s.prefix + listID
}

func (s *RedisStore) Fetch(ctx context.Context, listID string) (List, error) {
	data, err := s.client.Get(ctx, s.key(listID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return emptyList(listID), nil
	}
	if err != nil {
		return List{}, errors.WithMessagef(err, "get todo list %s", listID)
	}
	var l List
	if err := json.Unmarshal(data, &l); err != nil {
		return List{}, errors.Wrapf(err, "decode todo list %s", listID)
	}
	l.ID = listID
	if l.Items == nil {
		l.Items = []Item{}
	}
	return l, nil
}

func (s *RedisStore) Replace(ctx context.Context, list List) error {
	data, err := json.Marshal(list)
	if err != nil {
		return errors.Wrapf(err, "encode todo list %s", list.ID)
	}
	if err := s.client.Set(ctx, s.key(list.ID), data, s.ttl).Err(); err != nil {
		return errors.WithMessagef(err, "set todo list %s", list.ID)
	}
	return nil
}

func (s *RedisStore) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}
