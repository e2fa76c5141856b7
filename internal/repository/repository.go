package repository

import "gorm.io/gorm"

// Repository aggregate of every repository
type Repository struct {
	User           UserRepository
	Role           RoleRepository
	Course         CourseRepository
	Module         ModuleRepository
	ModuleOnCourse ModuleOnCourseRepository
	Enrollment     EnrollmentRepository
	Assignment     AssignmentRepository
	Submission     SubmissionRepository
	Feedback       FeedbackRepository
	Video          VideoRepository
}

// NewRepository builds the aggregate over one connection pool
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:           NewUserRepo(db),
		Role:           NewRoleRepo(db),
		Course:         NewCourseRepo(db),
		Module:         NewModuleRepo(db),
		ModuleOnCourse: NewModuleOnCourseRepo(db),
		Enrollment:     NewEnrollmentRepo(db),
		Assignment:     NewAssignmentRepo(db),
		Submission:     NewSubmissionRepo(db),
		Feedback:       NewFeedbackRepo(db),
		Video:          NewVideoRepo(db),
	}
}
