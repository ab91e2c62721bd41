// Package config loads service settings from the environment.
//
// A .env file in the working directory, if present, is loaded first.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"3000" validate:"required,numeric"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// APIKey is the shared secret every API request must present in the
	// api-key header. APIKeyHash, a bcrypt hash of the secret, takes
	// precedence when set.
	APIKey     string `envconfig:"API_KEY" default:"123456" validate:"required_without=APIKeyHash"`
	APIKeyHash string `envconfig:"API_KEY_HASH"`

	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	MetricsToken   string `envconfig:"METRICS_TOKEN"`

	// WriteLimitPerMin caps POST/PUT/DELETE requests per client IP; 0 disables it.
	WriteLimitPerMin int `envconfig:"WRITE_LIMIT_PER_MIN" default:"0" validate:"gte=0"`

	ReadHeaderTimeout time.Duration `envconfig:"READ_HEADER_TIMEOUT" default:"5s" validate:"gt=0"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s" validate:"gt=0"`
}

func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads the environment into a Config and validates it.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := validator.New().Struct(c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}
