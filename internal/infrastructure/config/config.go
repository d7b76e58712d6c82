package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=5000"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"ACCESS_TOKEN_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Stripe StripeConfig
}

type MongoConfig struct {
	// URI overrides credential-based composition when set (local development).
	URI      string `env:"MONGO_URI"`
	Host     string `env:"MONGO_HOST, default=cluster0.pr3rbd0.mongodb.net"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASS"`
	Database string `env:"MONGO_DB,   default=bistroDb"`
}

// ConnectionURI returns the MongoDB connection string: the explicit URI when
// provided, otherwise an Atlas SRV URI composed from the store credentials.
func (m MongoConfig) ConnectionURI() string {
	if m.URI != "" {
		return m.URI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", m.User, m.Password, m.Host)
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type StripeConfig struct {
	SecretKey string `env:"STRIPE_SECRET_KEY"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
