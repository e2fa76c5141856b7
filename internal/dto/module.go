package dto

// ── modules ──

type CreateModuleRequest struct {
	ModuleCode        string `json:"moduleCode"        binding:"required,max=50"`
	ModuleName        string `json:"moduleName"        binding:"required,max=255"`
	ModuleDescription string `json:"moduleDescription"`
	LecturerID        *int   `json:"lecturerId"`
}

type UpdateModuleRequest struct {
	ModuleCode        *string `json:"moduleCode"        binding:"omitempty,max=50"`
	ModuleName        *string `json:"moduleName"        binding:"omitempty,max=255"`
	ModuleDescription *string `json:"moduleDescription"`
	LecturerID        *int    `json:"lecturerId"`
}

// ModuleOnCourseRequest POST /module-on-course
type ModuleOnCourseRequest struct {
	CourseID int `json:"courseId" binding:"required"`
	ModuleID int `json:"moduleId" binding:"required"`
}

// EnrollRequest POST /enrollments
type EnrollRequest struct {
	StudentID int `json:"studentId" binding:"required"`
	ModuleID  int `json:"moduleId"  binding:"required"`
}
