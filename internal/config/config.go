package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress string           `mapstructure:"server_address"`
	DBSource      string           `mapstructure:"db_source"`
	Log           LogConfig        `mapstructure:"log"`
	Foursquare    FoursquareConfig `mapstructure:"foursquare"`
	Catalog       CatalogConfig    `mapstructure:"catalog"`
	Normalizer    NormalizerConfig `mapstructure:"normalizer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type FoursquareConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type CatalogConfig struct {
	// Source is "memory" (embedded or file-based YAML) or "postgres".
	Source string `mapstructure:"source"`
	File   string `mapstructure:"file"`
	Table  string `mapstructure:"table"`
	Locale string `mapstructure:"locale"`
}

type NormalizerConfig struct {
	LookupPhotos bool          `mapstructure:"lookup_photos"`
	PhotoTimeout time.Duration `mapstructure:"photo_timeout"`
	Concurrency  int           `mapstructure:"concurrency"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_address", ":8080")
	v.SetDefault("db_source", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("foursquare.api_key", "")
	v.SetDefault("foursquare.base_url", "https://api.foursquare.com/v3")
	v.SetDefault("foursquare.timeout", 10*time.Second)
	v.SetDefault("catalog.source", "memory")
	v.SetDefault("catalog.file", "")
	v.SetDefault("catalog.table", "places")
	v.SetDefault("catalog.locale", "en")
	v.SetDefault("normalizer.lookup_photos", false)
	v.SetDefault("normalizer.photo_timeout", 3*time.Second)
	v.SetDefault("normalizer.concurrency", 4)
}

// LoadConfig reads configuration from app.yaml in path, if present, and
// overrides it with environment variables (FOURSQUARE_API_KEY, DB_SOURCE, ...).
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("yaml")

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	if err = config.validate(); err != nil {
		return config, err
	}
	return config, nil
}

func (c Config) validate() error {
	switch c.Catalog.Source {
	case "memory":
	case "postgres":
		if c.DBSource == "" {
			return errors.New("config: db_source is required for the postgres catalog")
		}
	default:
		return fmt.Errorf("config: unknown catalog source %q", c.Catalog.Source)
	}
	if c.Normalizer.Concurrency < 1 {
		return fmt.Errorf("config: normalizer.concurrency must be positive, got %d", c.Normalizer.Concurrency)
	}
	return nil
}
