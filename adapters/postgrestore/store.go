package postgrestore

import (
	"errors"
	"fmt"

	"github.com/AccountHub/backend/pkg/config"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}

type Options struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

func ParseFromConfig(cfg *config.Config) Options {
	return Options{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Name:     cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
}

func (o Options) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		o.Host, o.Port, o.User, o.Password, o.Name, o.SSLMode)
}

func NewConnection(opts Options) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", opts.DSN())
	if err != nil {
		return nil, fmt.Errorf("cannot connect to postgres: %w", err)
	}

	return db, nil
}
