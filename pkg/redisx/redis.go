package redisx

import (
	"context"
	"strings"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/hatcher/genui/pkg/logs"
)

type RedisConfig struct {
	Address          string `json:"address" mapstructure:"address" yaml:"address"`
	Username         string `json:"username" mapstructure:"username" yaml:"username"`
	Password         string `json:"password" mapstructure:"password" yaml:"password"`
	DB               int    `json:"db" mapstructure:"db" yaml:"db"`
	RedisType        string `json:"redisType" mapstructure:"redis-type" yaml:"redis-type"` // standalone, cluster, sentinel, miniredis
	MasterName       string `json:"masterName" mapstructure:"master-name" yaml:"master-name"`
	SentinelUsername string `json:"sentinelUsername" mapstructure:"sentinel-username" yaml:"sentinel-username"`
	SentinelPassword string `json:"sentinelPassword" mapstructure:"sentinel-password" yaml:"sentinel-password"`
	DialTimeout      int    `json:"dialTimeout" mapstructure:"dial-timeout" yaml:"dial-timeout"` // ms
}

type Redis redis.UniversalClient

// NewRedis connects according to cfg.RedisType and pings the server. The
// returned close func also stops an embedded miniredis.
func NewRedis(ctx context.Context, cfg RedisConfig) (Redis, func() error, error) {
	var (
		client Redis
		mini   *miniredis.Miniredis
	)
	dialTimeout := time.Duration(cfg.DialTimeout) * time.Millisecond

	switch cfg.RedisType {
	case "standalone", "":
		client = redis.NewClient(&redis.Options{
			Addr:        cfg.Address,
			Username:    cfg.Username,
			Password:    cfg.Password,
			DB:          cfg.DB,
			DialTimeout: dialTimeout,
		})
	case "cluster":
		client = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:       strings.Split(cfg.Address, ","),
			Username:    cfg.Username,
			Password:    cfg.Password,
			DialTimeout: dialTimeout,
		})
	case "sentinel":
		client = redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:       cfg.MasterName,
			SentinelAddrs:    strings.Split(cfg.Address, ","),
			Username:         cfg.Username,
			Password:         cfg.Password,
			DB:               cfg.DB,
			SentinelUsername: cfg.SentinelUsername,
			SentinelPassword: cfg.SentinelPassword,
			DialTimeout:      dialTimeout,
		})
	case "miniredis":
		s, err := miniredis.Run()
		if err != nil {
			return nil, nil, errors.WithMessage(err, "start miniredis")
		}
		mini = s
		logs.Infof("using embedded miniredis at %s", s.Addr())
		client = redis.NewClient(&redis.Options{Addr: s.Addr()})
	default:
		return nil, nil, errors.Errorf("redis type %q is illegal", cfg.RedisType)
	}

	closeFn := func() error {
		err := client.Close()
		if mini != nil {
			mini.Close()
		}
		return err
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = closeFn()
		return nil, nil, errors.WithMessagef(err, "ping redis %s", cfg.Address)
	}
	return client, closeFn, nil
}
