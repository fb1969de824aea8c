package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Content backends.
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
	StoreHTTP     = "http"
)

type Config struct {
	Port          string        `mapstructure:"port"`
	Store         string        `mapstructure:"store"`
	DBDSN         string        `mapstructure:"db_dsn"`
	StoreURL      string        `mapstructure:"store_url"`
	StoreRPS      float64       `mapstructure:"store_rps"`
	SearchTimeout time.Duration `mapstructure:"search_timeout"`
	SearchLimit   int           `mapstructure:"search_limit"`
	Debounce      time.Duration `mapstructure:"debounce"`
	TemplatesDir  string        `mapstructure:"templates_dir"`
	LogFile       string        `mapstructure:"log_file"`
	RedisURL      string        `mapstructure:"redis_url"`
	AdminEmail    string        `mapstructure:"admin_email"`
	AdminPassword string        `mapstructure:"admin_password"`
}

// New returns a viper instance with defaults set and environment lookup
// enabled (PORT, DB_DSN, ...). Callers may bind flags on it before Load.
func New() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("store", StoreSQLite)
	v.SetDefault("db_dsn", "shopdrive.db") // sqlite file in project root
	v.SetDefault("store_url", "")
	v.SetDefault("store_rps", 5)
	v.SetDefault("search_timeout", "5s")
	v.SetDefault("search_limit", 10)
	v.SetDefault("debounce", "300ms")
	v.SetDefault("templates_dir", "./web/templates")
	v.SetDefault("log_file", "")
	v.SetDefault("redis_url", "")
	v.SetDefault("admin_email", "")
	v.SetDefault("admin_password", "")
}

// Load reads an optional config file (explicit path, or shopdrive.yaml in
// the working directory) on top of defaults, env and bound flags.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("shopdrive")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("validating config: %w", err)
	}

	log.Printf("[config] PORT=%s STORE=%s DB_DSN=%s STORE_URL=%s SEARCH_TIMEOUT=%s SEARCH_LIMIT=%d DEBOUNCE=%s LOG_FILE=%s REDIS=%t ADMIN_EMAIL=%s",
		cfg.Port, cfg.Store, cfg.DBDSN, cfg.StoreURL, cfg.SearchTimeout, cfg.SearchLimit, cfg.Debounce,
		cfg.LogFile, cfg.RedisURL != "", cfg.AdminEmail)
	return cfg, nil
}

func validate(cfg Config) error {
	switch cfg.Store {
	case StoreSQLite, StorePostgres, StoreMemory:
	case StoreHTTP:
		if cfg.StoreURL == "" {
			return fmt.Errorf("STORE=http requires STORE_URL")
		}
	default:
		return fmt.Errorf("invalid store: %s (must be sqlite, postgres, memory or http)", cfg.Store)
	}
	if cfg.SearchLimit <= 0 {
		return fmt.Errorf("invalid search limit: %d", cfg.SearchLimit)
	}
	if cfg.SearchTimeout < 0 || cfg.Debounce < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	if (cfg.AdminEmail == "") != (cfg.AdminPassword == "") {
		return fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD must be set together")
	}
	return nil
}
