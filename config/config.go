// Package config loads SDK settings from the environment, optionally seeded
// from a .env file.
package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/graphkit/facebook-sdk-go/graph"
	"github.com/graphkit/facebook-sdk-go/sdkerr"
)

// Config holds SDK configuration. Environment variables use the FB prefix:
// FB_CLIENT_ID, FB_CLIENT_SECRET, FB_LOG_LEVEL, FB_HTTP_TIMEOUT_SECONDS.
type Config struct {
	ClientID           string        `mapstructure:"client_id"`
	ClientSecret       string        `mapstructure:"client_secret"`
	LogLevel           string        `mapstructure:"log_level"`
	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	HTTPTimeout        time.Duration `mapstructure:"-"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("http_timeout_seconds", 30)

	v.SetEnvPrefix("FB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about.
	for _, key := range []string{"client_id", "client_secret", "log_level", "http_timeout_seconds"} {
		if err := v.BindEnv(key); err != nil {
			return nil, configError(err.Error())
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys("config").
			WithOp("Load").
			WithKind(sdkerr.ErrConfiguration).
			WithCause(err)
	}

	if cfg.ClientID == "" {
		return nil, configError("client_id is required")
	}
	if cfg.ClientSecret == "" {
		return nil, configError("client_secret is required")
	}
	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, configError("http_timeout_seconds must be positive")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	return &cfg, nil
}

// Credentials returns the app credentials carried by the config.
func (c *Config) Credentials() graph.Credentials {
	return graph.Credentials{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
	}
}

func configError(msg string) error {
	return sdkerr.NewSDKError().
		WithSubsys("config").
		WithOp("Load").
		WithKind(sdkerr.ErrConfiguration).
		WithMessage(msg)
}
