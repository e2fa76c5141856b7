package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zainaaazz/FullStackWebApplication/internal/dto"
	"github.com/zainaaazz/FullStackWebApplication/internal/model"
	"github.com/zainaaazz/FullStackWebApplication/internal/repository"
	pkgerrors "github.com/zainaaazz/FullStackWebApplication/pkg/errors"
)

// EnrollmentService student module enrollments
type EnrollmentService interface {
	Enroll(ctx context.Context, req *dto.EnrollRequest) (*model.Enrollment, error)
	List(ctx context.Context) ([]model.Enrollment, error)
	GetByID(ctx context.Context, id int) (*model.Enrollment, error)
	Remove(ctx context.Context, id int) error
}

type enrollmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEnrollmentService creates an EnrollmentService
func NewEnrollmentService(repo *repository.Repository, logger *zap.Logger) EnrollmentService {
	return &enrollmentService{repo: repo, logger: logger}
}

func (s *enrollmentService) Enroll(ctx context.Context, req *dto.EnrollRequest) (*model.Enrollment, error) {
	if err := ensureUserRole(ctx, s.repo.User, req.StudentID, ErrStudentRef, model.RoleStudent); err != nil {
		return nil, err
	}
	_, err := s.repo.Module.GetByID(ctx, req.ModuleID)
	if err := ensureExists(err, ErrModuleRef); err != nil {
		return nil, err
	}

	enrollment := &model.Enrollment{StudentID: req.StudentID, ModuleID: req.ModuleID}
	if err := s.repo.Enrollment.Create(ctx, enrollment); err != nil {
		s.logger.Error("enrolling student failed",
			zap.Int("student_id", req.StudentID),
			zap.Int("module_id", req.ModuleID),
			zap.Error(err),
		)
		return nil, pkgerrors.Downstream("Error enrolling student", err)
	}
	return enrollment, nil
}

func (s *enrollmentService) List(ctx context.Context) ([]model.Enrollment, error) {
	enrollments, err := s.repo.Enrollment.List(ctx)
	if err != nil {
		s.logger.Error("listing enrollments failed", zap.Error(err))
		return nil, pkgerrors.Downstream("Error retrieving enrollments", err)
	}
	return enrollments, nil
}

func (s *enrollmentService) GetByID(ctx context.Context, id int) (*model.Enrollment, error) {
	return s.load(ctx, id, "Error retrieving enrollment")
}

func (s *enrollmentService) Remove(ctx context.Context, id int) error {
	if _, err := s.load(ctx, id, "Error removing enrollment"); err != nil {
		return err
	}
	if err := s.repo.Enrollment.Delete(ctx, id); err != nil {
		s.logger.Error("removing enrollment failed", zap.Int("id", id), zap.Error(err))
		return pkgerrors.Downstream("Error removing enrollment", err)
	}
	return nil
}

func (s *enrollmentService) load(ctx context.Context, id int, failMsg string) (*model.Enrollment, error) {
	e, err := s.repo.Enrollment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		s.logger.Error("loading enrollment failed", zap.Int("id", id), zap.Error(err))
		return nil, pkgerrors.Downstream(failMsg, err)
	}
	return e, nil
}
