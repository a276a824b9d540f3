package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chamados/servicedesk/internal/application/auth/dto"
	"github.com/chamados/servicedesk/internal/application/auth/usecases"
	"github.com/chamados/servicedesk/internal/shared/errors"
	"github.com/chamados/servicedesk/internal/shared/logger"
	"github.com/chamados/servicedesk/internal/shared/utils"
)

type AuthHandler struct {
	loginUC      usecases.LoginExecutor
	unlockUC     usecases.UnlockLoginExecutor
	loginEventUC usecases.ListLoginEventsExecutor
	lockoutsUC   usecases.ListLockoutsExecutor
	logger       logger.Interface
}

func NewAuthHandler(
	loginUC usecases.LoginExecutor,
	unlockUC usecases.UnlockLoginExecutor,
	loginEventUC usecases.ListLoginEventsExecutor,
	lockoutsUC usecases.ListLockoutsExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:      loginUC,
		unlockUC:     unlockUC,
		loginEventUC: loginEventUC,
		lockoutsUC:   lockoutsUC,
		logger:       logger,
	}
}

// Login handles POST /api/auth/login. Missing fields reach the use case so that they are audited.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	cmd := usecases.LoginCommand{
		Login:     req.Login,
		Password:  req.Password,
		SourceIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		if !errors.IsAppError(err) || errors.ShouldLogAuthError(err) {
			h.logger.Warnw("login failed", "error", err, "login", strings.TrimSpace(req.Login), "ip", cmd.SourceIP)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		Token:   result.Token,
		User:    dto.ToSessionUserDTO(result.User),
	})
}

// Check handles GET /api/auth/check
func (h *AuthHandler) Check(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CheckResponse{
		LoggedIn: true,
		User:     dto.ActorToSessionUserDTO(actor),
	})
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so the client simply drops its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, LogoutResponse{Success: true, Logout: true})
}

// ListLoginEvents handles GET /api/auth/login-events?limit=
func (h *AuthHandler) ListLoginEvents(c *gin.Context) {
	limit, err := utils.ParseLimitQuery(c, "limit")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	events, err := h.loginEventUC.Execute(c.Request.Context(), usecases.ListLoginEventsQuery{Limit: limit})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", events)
}

// ListLockouts handles GET /api/auth/lockouts
func (h *AuthHandler) ListLockouts(c *gin.Context) {
	lockouts, err := h.lockoutsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", lockouts)
}

// UnlockLogin handles POST /api/auth/lockouts/:login/unlock
func (h *AuthHandler) UnlockLogin(c *gin.Context) {
	actor, err := utils.GetActor(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UnlockLoginCommand{
		Login:     c.Param("login"),
		Actor:     actor,
		SourceIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	if err := h.unlockUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login unlocked", nil)
}
