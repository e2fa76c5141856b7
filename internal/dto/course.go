package dto

// ── courses ──

type CreateCourseRequest struct {
	CourseCode string `json:"courseCode" binding:"required,max=50"`
	CourseName string `json:"courseName" binding:"required,max=255"`
	Duration   int    `json:"duration"   binding:"required,min=1"`
	Year       int    `json:"year"       binding:"required"`
}

type UpdateCourseRequest struct {
	CourseCode *string `json:"courseCode" binding:"omitempty,max=50"`
	CourseName *string `json:"courseName" binding:"omitempty,max=255"`
	Duration   *int    `json:"duration"   binding:"omitempty,min=1"`
	Year       *int    `json:"year"`
}
