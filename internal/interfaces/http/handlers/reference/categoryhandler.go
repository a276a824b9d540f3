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

type CategoryHandler struct {
	listUC   usecases.ListExecutor[refdto.CategoryDTO]
	createUC usecases.CreateCategoryExecutor
	updateUC usecases.UpdateCategoryExecutor
	deleteUC usecases.DeleteExecutor
	logger   logger.Interface
}

func NewCategoryHandler(
	listUC usecases.ListExecutor[refdto.CategoryDTO],
	createUC usecases.CreateCategoryExecutor,
	updateUC usecases.UpdateCategoryExecutor,
	deleteUC usecases.DeleteExecutor,
	logger logger.Interface,
) *CategoryHandler {
	return &CategoryHandler{
		listUC:   listUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// List handles GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	listRecords(c, h.listUC)
}

// Create handles POST /api/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create category", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category created successfully")
}

// Update handles PUT /api/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := parseID(c, "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(id))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category updated successfully", result)
}

// Delete handles DELETE /api/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	deleteRecord(c, h.deleteUC, "category")
}
