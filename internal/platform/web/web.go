// Package web holds small helpers shared by the HTTP handlers.
package web

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// QueryInt reads an integer query parameter, falling back when the parameter
// is absent or unparsable.
func QueryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
