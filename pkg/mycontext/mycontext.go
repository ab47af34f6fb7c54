package mycontext

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoContextAdapter exposes the request-scoped context.Context carried by an
// echo.Context, so services and stores can take a plain context.Context.
type EchoContextAdapter struct {
	c echo.Context
}

func NewEchoContextAdapter(c echo.Context) *EchoContextAdapter {
	return &EchoContextAdapter{c: c}
}

func (a *EchoContextAdapter) Deadline() (deadline time.Time, ok bool) {
	return a.c.Request().Context().Deadline()
}

func (a *EchoContextAdapter) Done() <-chan struct{} {
	return a.c.Request().Context().Done()
}

func (a *EchoContextAdapter) Err() error {
	return a.c.Request().Context().Err()
}

func (a *EchoContextAdapter) Value(key interface{}) interface{} {
	return a.c.Request().Context().Value(key)
}
