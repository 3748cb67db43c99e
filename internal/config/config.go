package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// ErrNoDatabase is returned alongside a usable Config when DATABASE_URL is
// unset. Callers may fall back to in-memory storage.
var ErrNoDatabase = errors.New("DATABASE_URL not set")

type Config struct {
	Env              string        `mapstructure:"app_env"`
	ListenAddr       string        `mapstructure:"listen_addr"`
	DatabaseURL      string        `mapstructure:"database_url"`
	RecomputeWorkers int           `mapstructure:"recompute_workers"`
	RecomputePoll    time.Duration `mapstructure:"recompute_poll"`
	HistoryCron      string        `mapstructure:"history_cron"`
	LogLevel         string        `mapstructure:"log_level"`
	TablesFile       string        `mapstructure:"rbs_tables_file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("database_url", "")
	v.SetDefault("recompute_workers", 2)
	v.SetDefault("recompute_poll", "500ms")
	// first day of every month, 02:00
	v.SetDefault("history_cron", "0 2 1 * *")
	v.SetDefault("log_level", "info")
	v.SetDefault("rbs_tables_file", "")
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	// HISTORY_CRON= disables the snapshot scheduler.
	v.AllowEmptyEnv(true)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return cfg, ErrNoDatabase
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return errors.New("LISTEN_ADDR is empty")
	}
	if c.RecomputeWorkers < 0 {
		return fmt.Errorf("RECOMPUTE_WORKERS must not be negative, got %d", c.RecomputeWorkers)
	}
	if c.RecomputePoll <= 0 {
		return fmt.Errorf("RECOMPUTE_POLL must be positive, got %s", c.RecomputePoll)
	}
	if c.HistoryCron != "" {
		if _, err := cron.ParseStandard(c.HistoryCron); err != nil {
			return fmt.Errorf("HISTORY_CRON: %w", err)
		}
	}
	return nil
}

func (c Config) IsProduction() bool { return c.Env == "production" }
