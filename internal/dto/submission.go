package dto

// ── submissions ──

// CreateSubmissionRequest StudentID defaults to the caller when omitted
type CreateSubmissionRequest struct {
	StudentID      *int   `json:"studentId"`
	AssignmentID   int    `json:"assignmentId"   binding:"required"`
	SubmissionText string `json:"submissionText"`
	VideoID        *int   `json:"videoId"`
}

type UpdateSubmissionRequest struct {
	Status         string  `json:"status"         binding:"required"`
	SubmissionText *string `json:"submissionText"`
}

// SubmissionListQuery GET /submissions
type SubmissionListQuery struct {
	AssignmentID *int `form:"assignmentId"`
}
