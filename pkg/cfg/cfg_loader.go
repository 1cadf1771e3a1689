package cfg

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type loadOptions struct {
	envPrefix string
	envKeys   []string
	optional  bool
}

type Option func(o *loadOptions)

// WithEnv lets PREFIX_SECTION_KEY environment variables override keys.
// Viper only resolves env vars for keys it already knows, so every key that
// may come from the environment alone has to be listed.
func WithEnv(prefix string, keys ...string) Option {
	return func(o *loadOptions) {
		o.envPrefix = prefix
		o.envKeys = append(o.envKeys, keys...)
	}
}

// WithOptionalFile tolerates a missing config file.
func WithOptionalFile() Option {
	return func(o *loadOptions) {
		o.optional = true
	}
}

// LoadConfig 加载配置文件
func LoadConfig(configDir, configFile, configSuffix string, ptr interface{}, opts ...Option) error {
	o := &loadOptions{}
	for _, opt := range opts {
		opt(o)
	}
	v := viper.New()
	v.SetConfigName(configFile)
	v.AddConfigPath(configDir)
	v.SetConfigType(configSuffix)
	if o.envPrefix != "" {
		v.SetEnvPrefix(o.envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
		v.AutomaticEnv()
		for _, key := range o.envKeys {
			if err := v.BindEnv(key); err != nil {
				return errors.WithMessagef(err, "bind env for key %s", key)
			}
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !o.optional || !errors.As(err, &notFound) {
			return errors.WithMessagef(err, "read config failed, file: %s, dir: %s, type: %s", configFile, configDir, configSuffix)
		}
	}
	if err := v.Unmarshal(ptr); err != nil {
		return errors.WithMessagef(err, "decode config failed, file: %s, dir: %s, type: %s", configFile, configDir, configSuffix)
	}
	return nil
}
