package handlers

import (
	"github.com/chamados/servicedesk/internal/application/auth/dto"
)

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginResponse keeps the flat shape the browser client reads the token from.
type LoginResponse struct {
	Success bool               `json:"success"`
	Token   string             `json:"token"`
	User    dto.SessionUserDTO `json:"user"`
}

type CheckResponse struct {
	LoggedIn bool               `json:"loggedIn"`
	User     dto.SessionUserDTO `json:"user"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
	Logout  bool `json:"logout"`
}
