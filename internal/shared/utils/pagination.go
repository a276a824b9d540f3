package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chamados/servicedesk/internal/shared/errors"
)

// ParseLimitQuery reads an optional non-negative integer query parameter. A missing value is 0;
// a negative or non-numeric one is a validation error.
func ParseLimitQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errors.NewValidationError("invalid " + name + " parameter")
	}
	return limit, nil
}
