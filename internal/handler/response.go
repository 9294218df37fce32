package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"webclass/internal/errors"
)

// Error codes used in JSON error bodies.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "TODO_NOT_FOUND"
	CodeUpstream   = "UPSTREAM_ERROR"
)

func errorJSON(c echo.Context, status int, message, code string) error {
	return c.JSON(status, errors.ErrorResponse{Error: message, Code: code})
}

// parseID reads a positive numeric :id. Malformed ids are reported as not found.
func parseID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// completedFilter maps ?completed=true|false to a filter. Any other value means no filter.
func completedFilter(c echo.Context, param string) *bool {
	switch c.QueryParam(param) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}
