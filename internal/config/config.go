package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config carries everything main needs to wire the app. It is built once
// at startup and passed down explicitly; there is no package-level state.
type Config struct {
	Addr          string `mapstructure:"addr"`
	DatabaseDSN   string `mapstructure:"database_dsn"`
	SessionSecret string `mapstructure:"session_secret"`
	SeedUsername  string `mapstructure:"seed_username"`
	SeedPassword  string `mapstructure:"seed_password"`
	LogLevel      string `mapstructure:"log_level"`
}

// Load reads configuration from INV_* environment variables, applying
// defaults for everything except the database DSN, which has no sane
// fallback and fails fast when missing.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("INV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("session_secret", "dev_fallback_secret")
	v.SetDefault("seed_username", "testuser")
	v.SetDefault("seed_password", "testpassword")
	v.SetDefault("log_level", "info")

	// AutomaticEnv alone does not surface keys to Unmarshal; bind them.
	for _, key := range []string{"addr", "database_dsn", "session_secret", "seed_username", "seed_password", "log_level"} {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.DatabaseDSN == "" {
		return Config{}, errors.New("INV_DATABASE_DSN is empty (check your .env)")
	}
	return cfg, nil
}
