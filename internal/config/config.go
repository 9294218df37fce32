package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string `env:"SERVER_PORT" envDefault:"3000"`
	APIPort     string `env:"API_PORT" envDefault:"3001"`
	LogLevel    int    `env:"LOG_LEVEL" envDefault:"0"`
	SwaggerHost string `env:"SWAGGER_HOST"`
	SeedFile    string `env:"SEED_FILE" envDefault:"seed/users.json"`

	Database Database `envPrefix:"DB_"`
	Redis    Redis    `envPrefix:"REDIS_"`
	Session  Session  `envPrefix:"SESSION_"`
	Todo     Todo     `envPrefix:"TODO_"`
	Gemini   Gemini   `envPrefix:"GEMINI_"`
}

// Database selects the gorm dialector and the users database.
type Database struct {
	Driver string `env:"DRIVER" envDefault:"sqlite"`
	DSN    string `env:"DSN" envDefault:"data.sqlite"`
}

// Redis holds the session store connection.
type Redis struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// Session configures the session cookie and its inactivity window.
type Session struct {
	Secret string        `env:"SECRET" envDefault:"dev-secret-change-me"`
	TTL    time.Duration `env:"TTL" envDefault:"1h"`
	Cookie string        `env:"COOKIE" envDefault:"sid"`
	Secure bool          `env:"SECURE" envDefault:"false"`
}

// Todo selects which todo API variant the api binary serves.
type Todo struct {
	Variant    string `env:"VARIANT" envDefault:"tasks"`
	Store      string `env:"STORE" envDefault:"memory"`
	DSN        string `env:"DSN" envDefault:"todos.db"`
	SampleData bool   `env:"SAMPLE_DATA" envDefault:"false"`
}

// Gemini configures the generative AI proxy.
type Gemini struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL" envDefault:"gemini-2.0-flash-001"`
}

// Load builds Config from the environment.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "sqlite", "mysql":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	switch c.Todo.Variant {
	case "tasks", "activities":
	default:
		return fmt.Errorf("unsupported TODO_VARIANT %q", c.Todo.Variant)
	}
	switch c.Todo.Store {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("unsupported TODO_STORE %q", c.Todo.Store)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}
