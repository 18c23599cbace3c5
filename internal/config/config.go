package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// File names inside DataDir.
const (
	HistoryFile   = "history.csv"
	UsersFile     = "registered_list.csv"
	FavoritesFile = "favorites.csv"
	JournalFile   = "journal.csv"
	QuotesFile    = "day-by-day.csv"
	LogFile       = "hilom.log"
)

// Config is the application configuration.
type Config struct {
	Env              string        `mapstructure:"ENV"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
	DataDir          string        `mapstructure:"DATA_DIR"`
	DatabaseURL      string        `mapstructure:"DATABASE_URL"`
	DBConnectTimeout time.Duration `mapstructure:"DB_CONNECT_TIMEOUT"`
	AdminEmails      []string      `mapstructure:"ADMIN_EMAILS"`
}

// Load reads HILOM_* environment variables and, when configFile is not
// empty, a YAML file. Environment wins over the file.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HILOM")
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATA_DIR", ".")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_CONNECT_TIMEOUT", "5s")
	v.SetDefault("ADMIN_EMAILS", "")

	v.BindEnv("ENV")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("DATA_DIR")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_CONNECT_TIMEOUT")
	v.BindEnv("ADMIN_EMAILS")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.AdminEmails = splitEmails(cfg.AdminEmails)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func splitEmails(in []string) []string {
	var out []string
	for _, item := range in {
		for _, e := range strings.Split(item, ",") {
			if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
				out = append(out, e)
			}
		}
	}
	return out
}

// Validate rejects settings the application cannot run with.
func (c *Config) Validate() error {
	if c.DBConnectTimeout <= 0 {
		return fmt.Errorf("DB_CONNECT_TIMEOUT must be positive, got %s", c.DBConnectTimeout)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.LogLevel)
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("DATA_DIR must not be empty")
	}
	return nil
}

// IsDev reports whether ENV is development.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// HasDatabase reports whether a relational store is configured.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// Path joins name onto DataDir.
func (c *Config) Path(name string) string {
	return filepath.Join(c.DataDir, name)
}
