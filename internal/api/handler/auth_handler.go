package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/zainaaazz/FullStackWebApplication/internal/dto"
	"github.com/zainaaazz/FullStackWebApplication/internal/service"
	"github.com/zainaaazz/FullStackWebApplication/pkg/response"
)

// AuthHandler login, registration and logout
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.OK(c, result)
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, "User registered", id)
}

// Logout POST /auth/logout; tokens are stateless so nothing is revoked
func (h *AuthHandler) Logout(c *gin.Context) {
	response.Message(c, "User logged out")
}
