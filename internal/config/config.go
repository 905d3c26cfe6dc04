package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	DB  DBConfig  `mapstructure:"db"`
	Log LogConfig `mapstructure:"log"`
}

type DBConfig struct {
	// Driver selects the relational backend: "sqlite" (default, desktop
	// deployment) or "postgres".
	Driver string `mapstructure:"driver"`
	// Path is the sqlite database file.
	Path string `mapstructure:"path"`
	// DSN is the postgres connection string.
	DSN string `mapstructure:"dsn"`
}

type LogConfig struct {
	Mode string `mapstructure:"mode"`
}

// Load reads laptopshop.yaml from the usual locations with LAPTOPSHOP_
// environment overrides. A missing config file is fine; defaults apply.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("laptopshop")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.laptopshop/")
	v.AddConfigPath("/etc/laptopshop/")

	v.SetEnvPrefix("LAPTOPSHOP")
	v.AutomaticEnv()

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", "laptopshop.db")
	v.SetDefault("log.mode", "development")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
