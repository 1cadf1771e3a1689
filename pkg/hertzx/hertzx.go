package hertzx

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/hertz-contrib/cors"

	"github.com/hatcher/genui/pkg/hertzx/middleware"
	"github.com/hatcher/genui/pkg/resp"
)

type WebConfig struct {
	Host               string   `json:"host" yaml:"host" mapstructure:"host"` // 默认 0.0.0.0
	Port               int      `json:"port" yaml:"port" mapstructure:"port"` // 默认 3000
	MaxRequestBodySize int      `json:"maxRequestBodySize" yaml:"max-request-body-size" mapstructure:"max-request-body-size"`
	ReadTimeout        int      `json:"readTimeout" yaml:"read-timeout" mapstructure:"read-timeout"`    // ms
	WriteTimeout       int      `json:"writeTimeout" yaml:"write-timeout" mapstructure:"write-timeout"` // ms, long enough for SSE
	IdleTimeout        int      `json:"idleTimeout" yaml:"idle-timeout" mapstructure:"idle-timeout"`    // ms
	ShutdownTimeout    int      `json:"shutdownTimeout" yaml:"shutdown-timeout" mapstructure:"shutdown-timeout"`
	AllowOrigins       []string `json:"allowOrigins" yaml:"allow-origins" mapstructure:"allow-origins"` // empty allows all
}

func (cfg *WebConfig) Prepare() {
	if cfg.Host == "" {
		cfg.Host = "0.0.0.0"
	}
	if cfg.Port == 0 {
		cfg.Port = 3000
	}
	if cfg.MaxRequestBodySize == 0 {
		cfg.MaxRequestBodySize = 4 * 1024 * 1024
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 60 * 1000
	}
	if cfg.IdleTimeout == 0 {
		cfg.IdleTimeout = 3 * 60 * 1000
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 24 * 60 * 60 * 1000
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * 1000
	}
}

func (cfg *WebConfig) Addr() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}

// WebEngine builds a hertz server with log id, CORS and access log
// middleware installed. cfg is expected to be prepared.
func WebEngine(cfg WebConfig) *server.Hertz {
	opts := []config.Option{
		server.WithHostPorts(cfg.Addr()),
		server.WithMaxRequestBodySize(cfg.MaxRequestBodySize),
		server.WithReadTimeout(time.Duration(cfg.ReadTimeout) * time.Millisecond),
		server.WithWriteTimeout(time.Duration(cfg.WriteTimeout) * time.Millisecond),
		server.WithIdleTimeout(time.Duration(cfg.IdleTimeout) * time.Millisecond),
		server.WithExitWaitTime(time.Duration(cfg.ShutdownTimeout) * time.Millisecond),
		server.WithDisablePrintRoute(true),
	}
	h := server.Default(opts...)

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	corsCfg.AllowHeaders = []string{"*"}
	corsCfg.ExposeHeaders = []string{middleware.LogIDHeader}

	h.Use(middleware.SetLogIdMW())
	h.Use(cors.New(corsCfg))
	h.Use(middleware.AccessLogMW())
	return h
}

// DefaultQuery returns the query value, or def when it is missing or empty.
func DefaultQuery(c *app.RequestContext, name, def string) string {
	v := c.Query(name)
	if v == "" {
		return def
	}
	return v
}

// OK 返回成功信息
func OK(c *app.RequestContext, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Text(c *app.RequestContext, text string) {
	c.String(http.StatusOK, text)
}

// Fail aborts with the status carried by err, 500 when it carries none.
func Fail(c *app.RequestContext, err error) {
	code, message := resp.StatusOf(err)
	c.AbortWithStatusJSON(code, resp.Error(message))
}
