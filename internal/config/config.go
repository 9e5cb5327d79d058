package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. HOME_PATTERNS_LOG_LEVEL.
const EnvPrefix = "HOME_PATTERNS"

type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	DB         DBConfig         `mapstructure:"db"`
	Port       string           `mapstructure:"port"`
	Thermostat ThermostatConfig `mapstructure:"thermostat"`
	Remote     RemoteConfig     `mapstructure:"remote"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Stream     StreamConfig     `mapstructure:"stream"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DBConfig locates the SQLite journal. An empty path keeps the journal in memory.
type DBConfig struct {
	Path string `mapstructure:"path"`
}

type ThermostatConfig struct {
	InitialC float64 `mapstructure:"initial_c"`
}

type RemoteConfig struct {
	MaxHistory int `mapstructure:"max_history"` // 0 means unbounded
}

// HTTPConfig tunes the status API server. Durations accept "10s" style values.
type HTTPConfig struct {
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

// StreamConfig bounds the /ws polling interval a client may request.
type StreamConfig struct {
	DefaultInterval time.Duration `mapstructure:"default_interval"`
	MaxInterval     time.Duration `mapstructure:"max_interval"`
}

var (
	errNonPositiveDuration = errors.New("must be > 0")
	errStreamInterval      = errors.New("stream.default_interval must be <= stream.max_interval")
)

var errNegativeMaxHistory = errors.New("remote.max_history must be >= 0")

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", "")
	v.SetDefault("port", "8080")
	v.SetDefault("thermostat.initial_c", 0.0)
	v.SetDefault("remote.max_history", 0)
	v.SetDefault("http.read_header_timeout", "10s")
	v.SetDefault("http.write_timeout", "10s")
	v.SetDefault("http.idle_timeout", "60s")
	v.SetDefault("http.shutdown_timeout", "10s")
	v.SetDefault("stream.default_interval", "1s")
	v.SetDefault("stream.max_interval", "10s")
}

// Load reads configuration from path, or from configs/config.yml when path is
// empty. A missing default file is not an error; a missing explicit file is.
// Environment variables override both.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs")
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Remote.MaxHistory < 0 {
		return errNegativeMaxHistory
	}
	for name, d := range map[string]time.Duration{
		"http.read_header_timeout": c.HTTP.ReadHeaderTimeout,
		"http.write_timeout":       c.HTTP.WriteTimeout,
		"http.idle_timeout":        c.HTTP.IdleTimeout,
		"http.shutdown_timeout":    c.HTTP.ShutdownTimeout,
		"stream.default_interval":  c.Stream.DefaultInterval,
		"stream.max_interval":      c.Stream.MaxInterval,
	} {
		if d <= 0 {
			return fmt.Errorf("%s %v: %w", name, d, errNonPositiveDuration)
		}
	}
	if c.Stream.DefaultInterval > c.Stream.MaxInterval {
		return errStreamInterval
	}
	return nil
}
