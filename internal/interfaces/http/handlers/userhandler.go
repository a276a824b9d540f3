package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chamados/servicedesk/internal/application/user/usecases"
	"github.com/chamados/servicedesk/internal/interfaces/dto"
	"github.com/chamados/servicedesk/internal/shared/logger"
	"github.com/chamados/servicedesk/internal/shared/utils"
)

// UserHandler handles HTTP requests for user administration
type UserHandler struct {
	listUsersUC      usecases.ListUsersExecutor
	createUserUC     usecases.CreateUserExecutor
	changePasswordUC usecases.ChangePasswordExecutor
	changeRoleUC     usecases.ChangeRoleExecutor
	setActiveUC      usecases.SetActiveExecutor
	deleteUserUC     usecases.DeleteUserExecutor
	unlockUserUC     usecases.UnlockUserExecutor
	logger           logger.Interface
}

func NewUserHandler(
	listUsersUC usecases.ListUsersExecutor,
	createUserUC usecases.CreateUserExecutor,
	changePasswordUC usecases.ChangePasswordExecutor,
	changeRoleUC usecases.ChangeRoleExecutor,
	setActiveUC usecases.SetActiveExecutor,
	deleteUserUC usecases.DeleteUserExecutor,
	unlockUserUC usecases.UnlockUserExecutor,
	log logger.Interface,
) *UserHandler {
	return &UserHandler{
		listUsersUC:      listUsersUC,
		createUserUC:     createUserUC,
		changePasswordUC: changePasswordUC,
		changeRoleUC:     changeRoleUC,
		setActiveUC:      setActiveUC,
		deleteUserUC:     deleteUserUC,
		unlockUserUC:     unlockUserUC,
		logger:           log,
	}
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.listUsersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", users)
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// ChangePassword handles PUT /api/users/:id/password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, err := utils.ParseInt64Param(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	cmd := usecases.ChangePasswordCommand{UserID: userID, Password: req.Password}
	if err := h.changePasswordUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password updated successfully", nil)
}

// ChangeRole handles PUT /api/users/:id/role
func (h *UserHandler) ChangeRole(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, err := utils.ParseInt64Param(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.changeRoleUC.Execute(c.Request.Context(), req.ToCommand(userID, actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Role updated successfully", result)
}

// SetActive handles PUT /api/users/:id/active
func (h *UserHandler) SetActive(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, err := utils.ParseInt64Param(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.setActiveUC.Execute(c.Request.Context(), req.ToCommand(userID, actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DeleteUser handles DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, err := utils.ParseInt64Param(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteUserCommand{UserID: userID, Actor: actor}
	if err := h.deleteUserUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", nil)
}

// UnlockUser handles POST /api/users/:id/unlock
func (h *UserHandler) UnlockUser(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, err := utils.ParseInt64Param(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UnlockUserCommand{
		UserID:    userID,
		Actor:     actor,
		SourceIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	if err := h.unlockUserUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login unlocked", nil)
}
