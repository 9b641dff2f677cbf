package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT        JWTConfig
	Mongo      MongoConfig
	Redis      RedisConfig
	Cloudinary CloudinaryConfig
}

type JWTConfig struct {
	AccessSecret  string `env:"ACCESS_TOKEN_SECRET"`
	RefreshSecret string `env:"REFRESH_TOKEN_SECRET"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type CloudinaryConfig struct {
	URL string `env:"CLOUDINARY_URL"`
}

// IsProduction reports whether the service runs with production hardening
// (secure cookies).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
