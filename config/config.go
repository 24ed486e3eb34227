package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port       string   `env:"PORT" envDefault:"5000"`
	MongoURL   string   `env:"MONGODB_URL,required,notEmpty"`
	MongoDB    string   `env:"MONGO_DB" envDefault:"traveldb"`
	JWTSecret  string   `env:"JWT_SECRET,required,notEmpty"`
	RedisAddr  string   `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	SMTPHost   string   `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort   string   `env:"SMTP_PORT" envDefault:"587"`
	EmailUser  string   `env:"EMAIL_USER"`
	EmailPass  string   `env:"EMAIL_PASS"`
	CORSOrigin []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	Env        string   `env:"ENV" envDefault:"production"`
}

// Load reads .env if present, then parses the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address for http.Server.
func (c Config) Addr() string {
	if len(c.Port) > 0 && c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

// IsDevelopment reports whether detailed error messages may be surfaced.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// MailConfigured reports whether the SMTP transport has credentials.
func (c Config) MailConfigured() bool {
	return c.EmailUser != "" && c.EmailPass != ""
}
