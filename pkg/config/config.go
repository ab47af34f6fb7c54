package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV" default:"local"`
	Port         int    `envconfig:"PORT" default:"8080"`
	Debug        bool   `envconfig:"DEBUG" default:"false"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`

	DB     DBConfig
	Redis  RedisConfig
	Mailer MailerConfig
}

type DBConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	Port     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	User     string `envconfig:"POSTGRES_USER" default:"postgres"`
	Password string `envconfig:"POSTGRES_PASSWORD" default:"postgres"`
	Name     string `envconfig:"POSTGRES_DB" default:"accounts"`
	SSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type MailerConfig struct {
	Endpoint string `envconfig:"MAILER_ENDPOINT"`
	APIKey   string `envconfig:"MAILER_API_KEY"`
	Sender   string `envconfig:"MAILER_SENDER" default:"no-reply@accounthub.io"`
}

func LoadConfig() (*Config, error) {
	// missing .env is fine, real deployments use environment variables
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
