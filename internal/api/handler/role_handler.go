package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/zainaaazz/FullStackWebApplication/internal/dto"
	"github.com/zainaaazz/FullStackWebApplication/internal/service"
	"github.com/zainaaazz/FullStackWebApplication/pkg/response"
)

// RoleHandler role lookup and reassignment
type RoleHandler struct {
	roleSvc service.RoleService
}

// NewRoleHandler creates a RoleHandler
func NewRoleHandler(roleSvc service.RoleService) *RoleHandler {
	return &RoleHandler{roleSvc: roleSvc}
}

// ListRoles GET /api/roles
func (h *RoleHandler) ListRoles(c *gin.Context) {
	roles, err := h.roleSvc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, roles)
}

// AssignRole PUT /api/roles/:id, where :id is the user
func (h *RoleHandler) AssignRole(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.roleSvc.AssignRole(c.Request.Context(), userID, req.Role); err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, "User role updated successfully")
}
