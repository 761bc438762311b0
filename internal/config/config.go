package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Export  ExportConfig  `mapstructure:"export"`
}

type ServerConfig struct {
	Port      int    `mapstructure:"port"`
	StaticDir string `mapstructure:"static_dir"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type ExportConfig struct {
	ExcludePending  bool `mapstructure:"exclude_pending"`
	ExcludeDeclined bool `mapstructure:"exclude_declined"`
}

func NewDefault() *Config {
	return &Config{
		Server:  ServerConfig{Port: 8080},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads configuration from an optional YAML file and CARDEXPORT_*
// environment variables. A missing config file is not an error; defaults
// apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	cfg := NewDefault()

	v.SetDefault("server.port", cfg.Server.Port)
	v.SetDefault("logging.level", cfg.Logging.Level)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("cardexport")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("CARDEXPORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}
