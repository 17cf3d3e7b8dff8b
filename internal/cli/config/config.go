// Package config loads project configuration from .blocklua.yml.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/blocklua-lang/blocklua/pkg/block"
)

// Config is the blocklua project configuration.
type Config struct {
	// BaseHelpURL is the wiki root derived help URLs point into.
	BaseHelpURL string `mapstructure:"base_help_url"`

	// Program is the default saved-program file for generate and watch.
	Program string `mapstructure:"program"`

	Server ServerConfig `mapstructure:"server"`
}

// ServerConfig configures the dev server.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads .blocklua.yml from the given directory ("." for the working
// directory), with environment variable override and defaults applied.
func Load(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("base_help_url", block.DefaultBaseHelpURL)
	v.SetDefault("program", "program.json")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 4444)

	v.SetConfigName(".blocklua")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("BLOCKLUA")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file: defaults apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func validate(c *Config) error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.BaseHelpURL == "" {
		return fmt.Errorf("base_help_url cannot be empty")
	}
	return nil
}
