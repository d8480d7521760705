// Package config loads service configuration from an optional config.yaml
// plus environment overrides (FILTERBAR_* variables).
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full server configuration.
type Config struct {
	Port        string
	LogLevel    string
	Development bool
	DatabaseURL string
	CatalogDir  string
	LocaleDir   string
	JWTSecret   string
	ShareTTL    time.Duration
}

// Load reads configuration from configPath (directory containing an
// optional config.yaml) with environment overrides. Missing config files
// are fine; defaults plus environment cover everything.
func Load(configPath string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	v.SetEnvPrefix("FILTERBAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("catalog.dir", "configs/catalogs")
	v.SetDefault("locale.dir", "configs/locales")
	v.SetDefault("share.ttl", "168h")

	if err := v.ReadInConfig(); err != nil {
		// Config file is optional; only syntax errors are fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	return Config{
		Port:        v.GetString("port"),
		LogLevel:    v.GetString("log.level"),
		Development: v.GetBool("log.development"),
		DatabaseURL: v.GetString("database.url"),
		CatalogDir:  v.GetString("catalog.dir"),
		LocaleDir:   v.GetString("locale.dir"),
		JWTSecret:   v.GetString("jwt.secret"),
		ShareTTL:    v.GetDuration("share.ttl"),
	}, nil
}
