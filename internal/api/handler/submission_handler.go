package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/zainaaazz/FullStackWebApplication/internal/dto"
	"github.com/zainaaazz/FullStackWebApplication/internal/service"
	"github.com/zainaaazz/FullStackWebApplication/pkg/response"
)

// SubmissionHandler assignment submissions
type SubmissionHandler struct {
	submissionSvc service.SubmissionService
}

// NewSubmissionHandler creates a SubmissionHandler
func NewSubmissionHandler(submissionSvc service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionSvc: submissionSvc}
}

// Submit POST /submissions
func (h *SubmissionHandler) Submit(c *gin.Context) {
	caller, ok := mustGetCaller(c)
	if !ok {
		return
	}
	var req dto.CreateSubmissionRequest
	if !bindJSON(c, &req) {
		return
	}
	sub, err := h.submissionSvc.Create(c.Request.Context(), &req, caller)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, "Assignment submitted successfully", sub.SubmissionID)
}

// ListSubmissions GET /submissions[?assignmentId=N]
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	var q dto.SubmissionListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid assignmentId")
		return
	}
	list, err := h.submissionSvc.List(c.Request.Context(), &q)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, list)
}

// GetSubmission GET /submissions/:id
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	sub, err := h.submissionSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, sub)
}

// UpdateSubmission PUT /submissions/:id
func (h *SubmissionHandler) UpdateSubmission(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateSubmissionRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.submissionSvc.Update(c.Request.Context(), id, &req); err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, "Submission status updated successfully")
}

// DeleteSubmission DELETE /submissions/:id
func (h *SubmissionHandler) DeleteSubmission(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	caller, ok := mustGetCaller(c)
	if !ok {
		return
	}
	if err := h.submissionSvc.Delete(c.Request.Context(), id, caller); err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, "Submission deleted successfully")
}
