package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/zainaaazz/FullStackWebApplication/internal/dto"
	"github.com/zainaaazz/FullStackWebApplication/internal/service"
	"github.com/zainaaazz/FullStackWebApplication/pkg/response"
)

// AssignmentHandler assignments
type AssignmentHandler struct {
	assignmentSvc service.AssignmentService
}

// NewAssignmentHandler creates an AssignmentHandler
func NewAssignmentHandler(assignmentSvc service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentSvc: assignmentSvc}
}

// CreateAssignment POST /assignments
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.assignmentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, "Assignment created successfully", a.AssignmentID)
}

// ListAssignments GET /assignments
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	list, err := h.assignmentSvc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, list)
}

// ListByModule GET /assignments/module/:ModuleID
func (h *AssignmentHandler) ListByModule(c *gin.Context) {
	moduleID, ok := parseID(c, "ModuleID")
	if !ok {
		return
	}
	list, err := h.assignmentSvc.ListByModule(c.Request.Context(), moduleID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, list)
}

// GetAssignment GET /assignments/:id
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	a, err := h.assignmentSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, a)
}

// UpdateAssignment PUT /assignments/:id
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateAssignmentRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.assignmentSvc.Update(c.Request.Context(), id, &req); err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, "Assignment updated successfully")
}

// DeleteAssignment DELETE /assignments/:id
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.assignmentSvc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, "Assignment deleted successfully")
}
