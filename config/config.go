package config

import (
	"path/filepath"
	"strings"

	"github.com/hatcher/genui/pkg/cfg"
	"github.com/hatcher/genui/pkg/hertzx"
	"github.com/hatcher/genui/pkg/logs"
	"github.com/hatcher/genui/todo"
)

const EnvPrefix = "GENUI"

type ChartConfig struct {
	Seed uint64 `json:"seed" yaml:"seed" mapstructure:"seed"` // 0 seeds from the clock
}

type Config struct {
	Web   hertzx.WebConfig `json:"web" yaml:"web" mapstructure:"web"`
	Log   logs.LogConfig   `json:"log" yaml:"log" mapstructure:"log"`
	Store todo.StoreConfig `json:"store" yaml:"store" mapstructure:"store"`
	Chart ChartConfig      `json:"chart" yaml:"chart" mapstructure:"chart"`
}

func (c *Config) Prepare() {
	c.Web.Prepare()
	c.Log.Prepare()
	c.Store.Prepare()
}

// envKeys are the settings that can come from the environment alone.
var envKeys = []string{
	"web.host", "web.port",
	"log.level", "log.output", "log.path", "log.file",
	"store.type", "store.key-prefix", "store.ttl",
	"store.redis.address", "store.redis.username", "store.redis.password", "store.redis.db", "store.redis.redis-type",
	"store.db.db-type", "store.db.dsn", "store.db.database",
	"store.snapshot.path", "store.snapshot.schedule.enabled", "store.snapshot.schedule.type", "store.snapshot.schedule.value",
	"chart.seed",
}

// Load reads the YAML file at path (optional) with GENUI_* overrides and
// applies defaults.
func Load(path string) (*Config, error) {
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	ext := strings.TrimPrefix(filepath.Ext(file), ".")
	if ext == "" {
		ext = "yaml"
	}
	c := &Config{}
	err := cfg.LoadConfig(dir, strings.TrimSuffix(file, filepath.Ext(file)), ext, c,
		cfg.WithOptionalFile(), cfg.WithEnv(EnvPrefix, envKeys...))
	if err != nil {
		return nil, err
	}
	c.Prepare()
	return c, nil
}
