package reference

import (
	"net/http"

	"github.com/gin-gonic/gin"

	refdto "github.com/chamados/servicedesk/internal/application/reference/dto"
	"github.com/chamados/servicedesk/internal/application/reference/usecases"
	"github.com/chamados/servicedesk/internal/interfaces/dto"
	"github.com/chamados/servicedesk/internal/shared/logger"
	"github.com/chamados/servicedesk/internal/shared/utils"
)

type GroupHandler struct {
	listUC   usecases.ListExecutor[refdto.GroupDTO]
	createUC usecases.CreateGroupExecutor
	updateUC usecases.UpdateGroupExecutor
	deleteUC usecases.DeleteExecutor
	logger   logger.Interface
}

func NewGroupHandler(
	listUC usecases.ListExecutor[refdto.GroupDTO],
	createUC usecases.CreateGroupExecutor,
	updateUC usecases.UpdateGroupExecutor,
	deleteUC usecases.DeleteExecutor,
	logger logger.Interface,
) *GroupHandler {
	return &GroupHandler{
		listUC:   listUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// List handles GET /api/groups
func (h *GroupHandler) List(c *gin.Context) {
	listRecords(c, h.listUC)
}

// Create handles POST /api/groups
func (h *GroupHandler) Create(c *gin.Context) {
	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create group", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Group created successfully")
}

// Update handles PUT /api/groups/:id
func (h *GroupHandler) Update(c *gin.Context) {
	id, err := parseID(c, "group")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(id))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Group updated successfully", result)
}

// Delete handles DELETE /api/groups/:id
func (h *GroupHandler) Delete(c *gin.Context) {
	deleteRecord(c, h.deleteUC, "group")
}
