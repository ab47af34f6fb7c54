package validation

import (
	"context"
	"sync"

	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
	conform  = modifiers.New()
)

func Validate() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// Conform applies the struct's mod tags (trim, lcase, ...) in place.
func Conform(v interface{}) error {
	return conform.Struct(context.Background(), v)
}
