package dto

// ── feedback ──

// CreateFeedbackRequest LectureID defaults to the caller when omitted
type CreateFeedbackRequest struct {
	SubmissionID int    `json:"submissionId" binding:"required"`
	LectureID    *int   `json:"lectureId"`
	FeedbackText string `json:"feedbackText"`
	Mark         *int   `json:"mark"         binding:"required"`
}

type UpdateFeedbackRequest struct {
	FeedbackText *string `json:"feedbackText"`
	Mark         *int    `json:"mark"`
}

// FeedbackExportQuery GET /feedbacks/export
type FeedbackExportQuery struct {
	AssignmentID int `form:"assignmentId" binding:"required"`
}
