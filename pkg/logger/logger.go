package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

func NewAppLogger() (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)

	if strings.ToLower(os.Getenv("APP_ENV")) == "local" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}

	if err != nil {
		return nil, err
	}

	return l.Sugar(), nil
}

func Sync(l *zap.SugaredLogger) {
	// stdout sync errors are expected on some platforms
	_ = l.Sync()
}
