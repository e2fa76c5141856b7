package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/zainaaazz/FullStackWebApplication/internal/dto"
	"github.com/zainaaazz/FullStackWebApplication/internal/service"
	"github.com/zainaaazz/FullStackWebApplication/pkg/response"
)

// EnrollmentHandler student enrollments
type EnrollmentHandler struct {
	enrollmentSvc service.EnrollmentService
}

// NewEnrollmentHandler creates an EnrollmentHandler
func NewEnrollmentHandler(enrollmentSvc service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentSvc: enrollmentSvc}
}

// Enroll POST /enrollments
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req dto.EnrollRequest
	if !bindJSON(c, &req) {
		return
	}
	e, err := h.enrollmentSvc.Enroll(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, "Student enrolled successfully", e.EnrollmentID)
}

// ListEnrollments GET /enrollments
func (h *EnrollmentHandler) ListEnrollments(c *gin.Context) {
	enrollments, err := h.enrollmentSvc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, enrollments)
}

// GetEnrollment GET /enrollments/:id
func (h *EnrollmentHandler) GetEnrollment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	e, err := h.enrollmentSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, e)
}

// RemoveEnrollment DELETE /enrollments/:id
func (h *EnrollmentHandler) RemoveEnrollment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.enrollmentSvc.Remove(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, "Enrollment removed successfully")
}
