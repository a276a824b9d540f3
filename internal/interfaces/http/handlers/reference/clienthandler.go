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

type ClientHandler struct {
	listUC   usecases.ListExecutor[refdto.ClientDTO]
	createUC usecases.CreateClientExecutor
	updateUC usecases.UpdateClientExecutor
	deleteUC usecases.DeleteExecutor
	logger   logger.Interface
}

func NewClientHandler(
	listUC usecases.ListExecutor[refdto.ClientDTO],
	createUC usecases.CreateClientExecutor,
	updateUC usecases.UpdateClientExecutor,
	deleteUC usecases.DeleteExecutor,
	logger logger.Interface,
) *ClientHandler {
	return &ClientHandler{
		listUC:   listUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// List handles GET /api/clients
func (h *ClientHandler) List(c *gin.Context) {
	listRecords(c, h.listUC)
}

// Create handles POST /api/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create client", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Client created successfully")
}

// Update handles PUT /api/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := parseID(c, "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(id))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client updated successfully", result)
}

// Delete handles DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	deleteRecord(c, h.deleteUC, "client")
}
