package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}

	return uint(id), nil
}
