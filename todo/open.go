package todo

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/hatcher/genui/pkg/ormx"
	"github.com/hatcher/genui/pkg/redisx"
	"github.com/hatcher/genui/pkg/schedule"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreDB     = "db"
)

type SnapshotConfig struct {
	Path     string                   `json:"path" yaml:"path" mapstructure:"path"`
	Schedule schedule.ScheduledConfig `json:"schedule" yaml:"schedule" mapstructure:"schedule"`
}

type StoreConfig struct {
	Type      string             `json:"type" yaml:"type" mapstructure:"type"` // memory, redis or db
	Redis     redisx.RedisConfig `json:"redis" yaml:"redis" mapstructure:"redis"`
	KeyPrefix string             `json:"keyPrefix" yaml:"key-prefix" mapstructure:"key-prefix"`
	TTL       int                `json:"ttl" yaml:"ttl" mapstructure:"ttl"` // seconds, redis only
	DB        ormx.DBConfig      `json:"db" yaml:"db" mapstructure:"db"`
	Snapshot  SnapshotConfig     `json:"snapshot" yaml:"snapshot" mapstructure:"snapshot"`
}

func (cfg *StoreConfig) Prepare() {
	if cfg.Type == "" {
		cfg.Type = StoreMemory
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultRedisKeyPrefix
	}
}

// Open builds the store selected by cfg.Type.
func Open(ctx context.Context, cfg StoreConfig) (Store, error) {
	switch cfg.Type {
	case StoreMemory, "":
		return NewMemoryStore(), nil
	case StoreRedis:
		client, closeFn, err := redisx.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(client, cfg.KeyPrefix, time.Duration(cfg.TTL)*time.Second, closeFn), nil
	case StoreDB:
		db, err := ormx.NewDBClient(cfg.DB)
		if err != nil {
			return nil, err
		}
		s, err := NewDBStore(db)
		if err != nil {
			_ = ormx.Close(db)
			return nil, err
		}
		return s, nil
	default:
		return nil, errors.Errorf("store type %q is illegal, expect %s, %s or %s", cfg.Type, StoreMemory, StoreRedis, StoreDB)
	}
}
