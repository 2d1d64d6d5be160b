package handler

import (
	"strconv"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrBadRequest.WithDetails("invalid " + name + " parameter")
	}

	return uint(id), nil
}

// queryPage parses the page/limit query parameters. Out-of-range values are
// clamped downstream; parse failures fall back to zero so defaults apply.
func queryPage(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))

	return page, limit
}

// queryUintPtr parses an optional numeric query parameter.
func queryUintPtr(c echo.Context, name string) *uint {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	value := uint(parsed)

	return &value
}

// queryBoolPtr parses an optional boolean query parameter.
func queryBoolPtr(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}

	return &parsed
}
