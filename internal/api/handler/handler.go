package handler

import "github.com/zainaaazz/FullStackWebApplication/internal/service"

// Handler aggregate of every handler
type Handler struct {
	Auth           *AuthHandler
	User           *UserHandler
	Role           *RoleHandler
	Course         *CourseHandler
	Module         *ModuleHandler
	ModuleOnCourse *ModuleOnCourseHandler
	Enrollment     *EnrollmentHandler
	Assignment     *AssignmentHandler
	Submission     *SubmissionHandler
	Feedback       *FeedbackHandler
	Video          *VideoHandler
	File           *FileHandler
	Export         *ExportHandler
}

// NewHandler builds the aggregate
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:           NewAuthHandler(svc.Auth),
		User:           NewUserHandler(svc.User),
		Role:           NewRoleHandler(svc.Role),
		Course:         NewCourseHandler(svc.Course),
		Module:         NewModuleHandler(svc.Module),
		ModuleOnCourse: NewModuleOnCourseHandler(svc.ModuleOnCourse),
		Enrollment:     NewEnrollmentHandler(svc.Enrollment),
		Assignment:     NewAssignmentHandler(svc.Assignment),
		Submission:     NewSubmissionHandler(svc.Submission),
		Feedback:       NewFeedbackHandler(svc.Feedback),
		Video:          NewVideoHandler(svc.Video),
		File:           NewFileHandler(svc.Media),
		Export:         NewExportHandler(svc.Export, svc.Calendar),
	}
}
