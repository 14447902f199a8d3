package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

var ErrConfig = errors.New("invalid configuration")

const (
	InClusterAuto  = "auto"
	InClusterTrue  = "true"
	InClusterFalse = "false"
)

type Config struct {
	Port           string        `env:"PORT" envDefault:"3000"`
	Listen         string        `env:"KUBEUI_LISTEN"`
	Kubeconfig     string        `env:"KUBECONFIG"`
	InCluster      string        `env:"KUBEUI_IN_CLUSTER" envDefault:"auto"`
	Token          string        `env:"KUBEUI_TOKEN"`
	RequestTimeout time.Duration `env:"KUBEUI_REQUEST_TIMEOUT" envDefault:"15s"`
	WatchInterval  time.Duration `env:"KUBEUI_WATCH_INTERVAL" envDefault:"10s"`
	CORSOrigins    []string      `env:"KUBEUI_CORS_ORIGINS" envDefault:"http://localhost:*,http://127.0.0.1:*" envSeparator:","`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return cfg, nil
}

// Addr is the address the HTTP server binds to.
func (c Config) Addr() string {
	if c.Listen != "" {
		return c.Listen
	}
	return "0.0.0.0:" + c.Port
}

func (c Config) Validate() error {
	switch c.InCluster {
	case InClusterAuto, InClusterTrue, InClusterFalse:
	default:
		return fmt.Errorf("%w: KUBEUI_IN_CLUSTER must be auto, true or false, got %q", ErrConfig, c.InCluster)
	}
	if c.Listen == "" && c.Port == "" {
		return fmt.Errorf("%w: PORT cannot be empty", ErrConfig)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: KUBEUI_REQUEST_TIMEOUT must be positive", ErrConfig)
	}
	if c.WatchInterval <= 0 {
		return fmt.Errorf("%w: KUBEUI_WATCH_INTERVAL must be positive", ErrConfig)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown LOG_LEVEL %q", ErrConfig, c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("%w: LOG_FORMAT must be json or console, got %q", ErrConfig, c.LogFormat)
	}
	return nil
}
