package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Admin  AdminConfig
	Tokens TokenConfig
	Mongo  MongoConfig
	Redis  RedisConfig
}

// AdminConfig holds the bootstrap admin credentials. The account is created
// lazily on the first login that presents these exact values.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
}

// TokenConfig holds the three independent signing secrets. All three are
// required; the process refuses to start without them.
type TokenConfig struct {
	AccessSecret  string `env:"JWT_SECRET"`
	RefreshSecret string `env:"REFRESH_TOKEN_SECRET"`
	LegacySecret  string `env:"LEGACY_TOKEN_SECRET"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=quickbasket"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Validate reports the configuration errors that must abort startup. Missing
// signing secrets or admin credentials are never surfaced per-request.
func (c *Config) Validate() error {
	var errs []error
	if c.Tokens.AccessSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.Tokens.RefreshSecret == "" {
		errs = append(errs, errors.New("REFRESH_TOKEN_SECRET is required"))
	}
	if c.Tokens.LegacySecret == "" {
		errs = append(errs, errors.New("LEGACY_TOKEN_SECRET is required"))
	}
	if c.Admin.Email == "" {
		errs = append(errs, errors.New("ADMIN_EMAIL is required"))
	}
	if c.Admin.Password == "" {
		errs = append(errs, errors.New("ADMIN_PASSWORD is required"))
	}
	return errors.Join(errs...)
}
