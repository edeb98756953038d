package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"condition_monitor/internal/condition"

	"github.com/spf13/viper"
)

const envPrefix = "CONDMON"

// Config holds all configuration for the service.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	DB         DBConfig         `mapstructure:"db"`
	Log        LogConfig        `mapstructure:"log"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Reporting  ReportingConfig  `mapstructure:"reporting"`
	Ingest     IngestConfig     `mapstructure:"ingest"`
	Conditions ConditionsConfig `mapstructure:"conditions"`
	Trend      TrendConfig      `mapstructure:"trend"`
	WS         WSConfig         `mapstructure:"ws"`
}

type ServerConfig struct {
	Port              string        `mapstructure:"port"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"` // console | json
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

// ReportingConfig sets the fixed offset in which hours are bucketed.
type ReportingConfig struct {
	UTCOffset string `mapstructure:"utc_offset"`

	// Location is derived from UTCOffset by Load.
	Location *time.Location `mapstructure:"-"`
}

type IngestConfig struct {
	DropProbability float64 `mapstructure:"drop_probability"`
}

type ConditionsConfig struct {
	DefaultLimit int `mapstructure:"default_limit"`
}

type TrendConfig struct {
	Shape             string `mapstructure:"shape"`
	LookupConcurrency int    `mapstructure:"lookup_concurrency"`

	// ParsedShape is derived from Shape by Load.
	ParsedShape condition.TrendShape `mapstructure:"-"`
}

type WSConfig struct {
	DefaultInterval time.Duration `mapstructure:"default_interval"`
	MaxInterval     time.Duration `mapstructure:"max_interval"`
}

// Load reads config.yml from dir (a missing file is fine; empty dir skips the
// file), applies CONDMON_* environment overrides and validates the result.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if dir != "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_header_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("db.path", "app.db")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")

	v.SetDefault("auth.signing_key", "change-me")
	v.SetDefault("auth.token_ttl", "1h")

	v.SetDefault("reporting.utc_offset", "+09:00")

	v.SetDefault("ingest.drop_probability", 0.0)

	v.SetDefault("conditions.default_limit", condition.DefaultConditionLimit)

	v.SetDefault("trend.shape", string(condition.TrendSplit))
	v.SetDefault("trend.lookup_concurrency", 8)

	v.SetDefault("ws.default_interval", "1s")
	v.SetDefault("ws.max_interval", "10s")
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Auth.SigningKey) == "" {
		return errors.New("auth.signing_key is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.token_ttl must be positive")
	}
	if c.Log.Encoding != "console" && c.Log.Encoding != "json" {
		return fmt.Errorf("log.encoding must be console or json, got %q", c.Log.Encoding)
	}

	loc, err := ParseOffset(c.Reporting.UTCOffset)
	if err != nil {
		return fmt.Errorf("reporting.utc_offset: %w", err)
	}
	c.Reporting.Location = loc

	if p := c.Ingest.DropProbability; p < 0 || p > 1 {
		return fmt.Errorf("ingest.drop_probability must be within [0, 1], got %v", p)
	}
	if c.Conditions.DefaultLimit <= 0 {
		return errors.New("conditions.default_limit must be positive")
	}

	shape, err := condition.ParseTrendShape(c.Trend.Shape)
	if err != nil {
		return fmt.Errorf("trend.shape: %w", err)
	}
	c.Trend.ParsedShape = shape
	if c.Trend.LookupConcurrency <= 0 {
		return errors.New("trend.lookup_concurrency must be positive")
	}

	if c.WS.DefaultInterval <= 0 || c.WS.MaxInterval < c.WS.DefaultInterval {
		return errors.New("ws intervals must be positive and default_interval <= max_interval")
	}
	return nil
}

// ParseOffset turns "+09:00", "-05:30" or "Z" into a fixed zone.
func ParseOffset(s string) (*time.Location, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse("Z07:00", s)
	if err != nil {
		return nil, fmt.Errorf("invalid utc offset %q", s)
	}
	_, offset := t.Zone()
	if offset == 0 {
		return time.UTC, nil
	}
	return time.FixedZone(s, offset), nil
}
