package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
}

type FirebaseConfig struct {
	CredentialsFile string `mapstructure:"credentials_file"`
	DatabaseURL     string `mapstructure:"database_url"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Firebase FirebaseConfig `mapstructure:"firebase"`
}

// Load reads configuration from the given file path (e.g. "config.yaml").
// The file is optional; environment variables with the QF prefix override
// everything, e.g. QF_SERVER_PORT=9000, QF_FIREBASE_DATABASE_URL=...
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.address", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "")
	// register the firebase keys so env-only deployments reach Unmarshal;
	// AutomaticEnv alone leaves unregistered keys invisible to it
	v.SetDefault("firebase.credentials_file", "")
	v.SetDefault("firebase.database_url", "")

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("QF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// a missing file is fine, env/defaults carry the config; an
		// explicit path that does not exist surfaces as fs.ErrNotExist
		// rather than ConfigFileNotFoundError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if c.Firebase.CredentialsFile == "" {
		return nil, fmt.Errorf("firebase credentials file not configured")
	}
	if c.Firebase.DatabaseURL == "" {
		return nil, fmt.Errorf("firebase database url not configured")
	}

	return &c, nil
}
