package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/reunicheck/errors"
)

const paramKeyPrefix = "param."

// RequireUUIDParams rejects requests whose named path params are not UUIDs.
// Parsed values are stored on the context; read them with UUIDParam.
func RequireUUIDParams(names ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for _, name := range names {
				raw := c.Param(name)
				id, err := uuid.Parse(raw)
				if err != nil {
					return errors.ErrInvalidID(name, raw)
				}
				c.Set(paramKeyPrefix+name, id)
			}
			return next(c)
		}
	}
}

// UUIDParam returns a path param validated by RequireUUIDParams
func UUIDParam(c echo.Context, name string) uuid.UUID {
	if id, ok := c.Get(paramKeyPrefix + name).(uuid.UUID); ok {
		return id
	}
	id, _ := uuid.Parse(c.Param(name))
	return id
}
