// Package config holds the environment-driven settings for the service
// layers. The calculation engine itself takes no configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config are the runtime settings for the server and CLI.
type Config struct {
	Port         string
	DatabasePath string
	DatasetPath  string
}

// Load reads settings from an optional config file and the environment.
// Environment variables use the SENTENCE_ prefix, e.g. SENTENCE_SERVER_PORT.
func Load() (*Config, error) {
	v := viper.GetViper()

	v.SetDefault("server.port", "8080")
	v.SetDefault("database.path", "sentence-engine.db")
	v.SetDefault("dataset.path", "data/offences.yaml")

	v.SetEnvPrefix("SENTENCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A config file is optional; only real read failures matter.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		Port:         v.GetString("server.port"),
		DatabasePath: ExpandPath(v.GetString("database.path")),
		DatasetPath:  ExpandPath(v.GetString("dataset.path")),
	}, nil
}

// ExpandPath expands ~ and environment variables in a filesystem path.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}
