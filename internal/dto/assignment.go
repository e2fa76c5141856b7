package dto

import "time"

// ── assignments ──

type CreateAssignmentRequest struct {
	Title        string    `json:"title"        binding:"required,max=255"`
	Instructions string    `json:"instructions"`
	DueDate      time.Time `json:"dueDate"      binding:"required"`
	ModuleID     int       `json:"ModuleID"     binding:"required"`
}

type UpdateAssignmentRequest struct {
	Title        *string    `json:"title"        binding:"omitempty,max=255"`
	Instructions *string    `json:"instructions"`
	DueDate      *time.Time `json:"dueDate"`
	ModuleID     *int       `json:"ModuleID"`
}
