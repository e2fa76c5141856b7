package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/zainaaazz/FullStackWebApplication/internal/dto"
	"github.com/zainaaazz/FullStackWebApplication/internal/service"
	"github.com/zainaaazz/FullStackWebApplication/pkg/response"
)

// FeedbackHandler lecturer feedback
type FeedbackHandler struct {
	feedbackSvc service.FeedbackService
}

// NewFeedbackHandler creates a FeedbackHandler
func NewFeedbackHandler(feedbackSvc service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackSvc: feedbackSvc}
}

// ProvideFeedback POST /feedbacks
func (h *FeedbackHandler) ProvideFeedback(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	var req dto.CreateFeedbackRequest
	if !bindJSON(c, &req) {
		return
	}
	fb, err := h.feedbackSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, "Feedback provided successfully", fb.FeedbackID)
}

// ListFeedback GET /feedbacks
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	list, err := h.feedbackSvc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, list)
}

// GetFeedback GET /feedbacks/:id
func (h *FeedbackHandler) GetFeedback(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	fb, err := h.feedbackSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, fb)
}

// UpdateFeedback PUT /feedbacks/:id; replies with the updated record
func (h *FeedbackHandler) UpdateFeedback(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateFeedbackRequest
	if !bindJSON(c, &req) {
		return
	}
	fb, err := h.feedbackSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Feedback updated successfully", "feedback": fb})
}

// DeleteFeedback DELETE /feedbacks/:id
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.feedbackSvc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, "Feedback deleted successfully")
}
