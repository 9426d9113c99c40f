package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// PPTX_EXPORT_LOG_LEVEL for log.level.
const EnvPrefix = "PPTX_EXPORT"

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

type Config struct {
	// stdio serves MCP on stdin/stdout; http serves the JSON API.
	Transport string `mapstructure:"transport"`
	Port      string `mapstructure:"port"`

	Log  LogConfig  `mapstructure:"log"`
	HTTP HTTPConfig `mapstructure:"http"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type HTTPConfig struct {
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("transport", TransportStdio)
	v.SetDefault("port", "8090")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("http.max_body_bytes", 52428800) // 50MB
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
}

// Load reads configuration from command-line args and the environment.
// Flags win over environment variables, which win over defaults.
func Load(args []string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	fs := pflag.NewFlagSet("pptx-export-mcp", pflag.ContinueOnError)
	fs.String("transport", TransportStdio, "transport to serve: stdio or http")
	fs.String("port", "8090", "HTTP listen port (http transport only)")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.String("log-format", "json", "log format: json or text")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	for key, flag := range map[string]string{
		"transport":  "transport",
		"port":       "port",
		"log.level":  "log-level",
		"log.format": "log-format",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Transport = strings.ToLower(cfg.Transport)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		errs = append(errs, fmt.Errorf("transport must be stdio or http, got %q", c.Transport))
	}
	if c.Transport == TransportHTTP {
		if n, err := strconv.Atoi(c.Port); err != nil || n <= 0 || n > 65535 {
			errs = append(errs, fmt.Errorf("port must be 1-65535, got %q", c.Port))
		}
		if c.HTTP.MaxBodyBytes <= 0 {
			errs = append(errs, errors.New("http.max_body_bytes must be positive"))
		}
		if c.HTTP.ShutdownTimeout <= 0 {
			errs = append(errs, errors.New("http.shutdown_timeout must be positive"))
		}
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		errs = append(errs, fmt.Errorf("log.format must be json or text, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// SlogLevel parses Level (debug, info, warn, error).
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
