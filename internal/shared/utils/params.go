package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chamados/servicedesk/internal/shared/authorization"
	"github.com/chamados/servicedesk/internal/shared/constants"
	"github.com/chamados/servicedesk/internal/shared/errors"
)

// ParseInt64Param parses a numeric URL path parameter such as a user id.
func ParseInt64Param(c *gin.Context, paramName, entityName string) (int64, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}
	return value, nil
}

// GetActor reads the caller identity the auth middleware stored on the context.
func GetActor(c *gin.Context) (authorization.Actor, error) {
	userID, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return authorization.Actor{}, errors.NewUnauthorizedError("user not authenticated")
	}
	id, ok := userID.(int64)
	if !ok {
		return authorization.Actor{}, errors.NewUnauthorizedError("user not authenticated")
	}

	actor := authorization.Actor{
		ID:   id,
		Name: c.GetString(constants.ContextKeyUserName),
		Role: authorization.UserRole(c.GetString(constants.ContextKeyUserRole)),
	}
	if !actor.Role.IsValid() {
		return authorization.Actor{}, errors.NewUnauthorizedError("user not authenticated")
	}
	return actor, nil
}
