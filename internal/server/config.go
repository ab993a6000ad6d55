package server

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables read by the configuration,
// e.g. TUOLAJI_ADDR.
const EnvPrefix = "TUOLAJI"

// Config of the web server.
type Config struct {
	Addr            string        `mapstructure:"addr"`
	Name            string        `mapstructure:"name"`
	ShortName       string        `mapstructure:"short_name"`
	Description     string        `mapstructure:"description"`
	WebDir          string        `mapstructure:"web_dir"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// NewViper returns a viper instance with the defaults of every setting and
// environment variables enabled.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("addr", "localhost:8080")
	v.SetDefault("name", "Tuo La Ji")
	v.SetDefault("short_name", "TuoLaJi")
	v.SetDefault("description", "Scorekeeper for Tuo La Ji (Tractor)")
	v.SetDefault("web_dir", "web")
	v.SetDefault("shutdown_timeout", 5*time.Second)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the optional config file named by the "config" key and
// decodes the settings.
func LoadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("failed to read config file %q: %w", file, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.Addr == "" {
		return cfg, errors.New("config: addr must not be empty")
	}
	if cfg.ShutdownTimeout <= 0 {
		return cfg, fmt.Errorf("config: shutdown_timeout must be positive, got %s", cfg.ShutdownTimeout)
	}
	return cfg, nil
}
