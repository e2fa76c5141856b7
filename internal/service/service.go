package service

import (
	"go.uber.org/zap"

	"github.com/zainaaazz/FullStackWebApplication/config"
	"github.com/zainaaazz/FullStackWebApplication/internal/model"
	"github.com/zainaaazz/FullStackWebApplication/internal/repository"
	"github.com/zainaaazz/FullStackWebApplication/pkg/blob"
	"github.com/zainaaazz/FullStackWebApplication/pkg/journal"
	"github.com/zainaaazz/FullStackWebApplication/pkg/jwt"
	"github.com/zainaaazz/FullStackWebApplication/pkg/transcode"
)

// Service aggregate of every service
type Service struct {
	Auth           AuthService
	User           UserService
	Role           RoleService
	Course         CourseService
	Module         ModuleService
	ModuleOnCourse ModuleOnCourseService
	Enrollment     EnrollmentService
	Assignment     AssignmentService
	Submission     SubmissionService
	Feedback       FeedbackService
	Video          VideoService
	Media          MediaService
	Export         ExportService
	Calendar       CalendarService
}

// Caller the authenticated principal behind a request
type Caller struct {
	UserID int
	Role   string
}

// IsStudent students may only act on their own coursework
func (c Caller) IsStudent() bool { return c.Role == model.RoleStudent }

// Deps process singletons the services share
type Deps struct {
	Repo       *repository.Repository
	JWT        *jwt.Manager
	Store      blob.Store
	Transcoder transcode.Transcoder
	Journal    *journal.Journal
	Logger     *zap.Logger
}

// NewService builds the aggregate
func NewService(cfg *config.Config, d Deps) *Service {
	users := NewUserService(d.Repo, d.Logger)
	return &Service{
		Auth:           NewAuthService(d.Repo, users, d.JWT, d.Logger),
		User:           users,
		Role:           NewRoleService(d.Repo, d.Logger),
		Course:         NewCourseService(d.Repo, d.Logger),
		Module:         NewModuleService(d.Repo, d.Logger),
		ModuleOnCourse: NewModuleOnCourseService(d.Repo, d.Logger),
		Enrollment:     NewEnrollmentService(d.Repo, d.Logger),
		Assignment:     NewAssignmentService(d.Repo, d.Logger),
		Submission:     NewSubmissionService(d.Repo, d.Logger),
		Feedback:       NewFeedbackService(d.Repo, d.Logger),
		Video:          NewVideoService(&cfg.Media, d.Repo, d.Store, d.Transcoder, d.Journal, d.Logger),
		Media:          NewMediaService(&cfg.Media, d.Repo, d.Store, d.Logger),
		Export:         NewExportService(d.Repo, d.Logger),
		Calendar:       NewCalendarService(d.Repo, d.Logger),
	}
}
