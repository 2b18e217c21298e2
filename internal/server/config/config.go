// Package config handles configuration for the chat board server. Values come
// from the process environment (optionally seeded from a .env file), with
// development defaults baked into the struct tags.
package config

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds runtime settings for the chat board server.
//
// Two session windows exist by design and must not be collapsed:
//   - AuthTokenValidity caps the signed credential itself (hard replay cap).
//   - LoginValidity is the server-held, revocable login window.
//
// The effective session length is the minimum of the two.
type Config struct {
	Addr string `env:"CHATBOARD_ADDR,default=:8080"`

	DBHost     string `env:"DB_HOST,default=localhost"`
	DBPort     int    `env:"DB_PORT,default=5432"`
	DBUser     string `env:"DB_USER,default=postgres"`
	DBPassword string `env:"DB_PASS,default=postgres"`
	DBName     string `env:"DB_NAME,default=chatboard"`
	DBDialect  string `env:"DB_DIALECT,default=pgx"`

	// SecretKey is the HMAC secret for signing session tokens (HS256).
	// The default is for development only.
	SecretKey string `env:"JWT_SECRET,default=secretKey"`

	AuthTokenValidity time.Duration `env:"AUTH_TOKEN_VALIDITY,default=30m"`
	LoginValidity     time.Duration `env:"LOGIN_VALIDITY,default=24h"`
}

// DSN assembles the connection string from the individual DB_* settings.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// LoadConfig builds a Config from the environment. A .env file in the working
// directory is loaded first if present; absence is not an error.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envdecode.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
