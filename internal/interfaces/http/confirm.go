package http

import (
	"context"

	"github.com/labstack/echo/v4"
)

type confirmKeyType struct{}

var confirmKey confirmKeyType

// ConfirmHeader copies the operator's explicit X-Confirm acknowledgment into
// the request context so the delete handlers can consult it through the
// Confirmer capability.
func ConfirmHeader() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("X-Confirm") == "true" {
				ctx := context.WithValue(c.Request().Context(), confirmKey, true)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}
}

// HeaderConfirmer reports whether the current request carried an explicit
// operator acknowledgment.
type HeaderConfirmer struct{}

func (HeaderConfirmer) Confirm(ctx context.Context, action string) bool {
	confirmed, _ := ctx.Value(confirmKey).(bool)
	return confirmed
}
