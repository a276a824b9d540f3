// Package reference serves the clients, categories and groups that tickets point at.
package reference

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chamados/servicedesk/internal/application/reference/usecases"
	"github.com/chamados/servicedesk/internal/shared/errors"
	"github.com/chamados/servicedesk/internal/shared/utils"
)

// listRecords answers a list request. ?active=1 narrows an admin's view; analysts are always narrowed.
func listRecords[D any](c *gin.Context, uc usecases.ListExecutor[D]) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	activeOnly := false
	if raw := c.Query("active"); raw != "" {
		activeOnly, err = strconv.ParseBool(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid active parameter"))
			return
		}
	}

	records, err := uc.Execute(c.Request.Context(), usecases.ListQuery{Actor: actor, ActiveOnly: activeOnly})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", records)
}

func deleteRecord(c *gin.Context, uc usecases.DeleteExecutor, kind string) {
	id, err := parseID(c, kind)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := uc.Execute(c.Request.Context(), usecases.DeleteCommand{ID: id}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, kind+" deleted successfully", nil)
}

func parseID(c *gin.Context, kind string) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errors.NewValidationError(kind + " ID is required")
	}
	return id, nil
}
