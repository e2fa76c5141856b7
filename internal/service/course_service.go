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

// CourseService course catalogue
type CourseService interface {
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	GetByID(ctx context.Context, id int) (*model.Course, error)
	Update(ctx context.Context, id int, req *dto.UpdateCourseRequest) error
	Delete(ctx context.Context, id int) error
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService creates a CourseService
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*model.Course, error) {
	course := &model.Course{
		CourseCode: req.CourseCode,
		CourseName: req.CourseName,
		Duration:   req.Duration,
		Year:       req.Year,
	}
	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("creating course failed", zap.String("code", req.CourseCode), zap.Error(err))
		return nil, pkgerrors.Downstream("Error creating course", err)
	}
	return course, nil
}

func (s *courseService) List(ctx context.Context) ([]model.Course, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("listing courses failed", zap.Error(err))
		return nil, pkgerrors.Downstream("Error retrieving courses", err)
	}
	return courses, nil
}

func (s *courseService) GetByID(ctx context.Context, id int) (*model.Course, error) {
	return s.load(ctx, id, "Error retrieving course")
}

func (s *courseService) Update(ctx context.Context, id int, req *dto.UpdateCourseRequest) error {
	course, err := s.load(ctx, id, "Error updating course")
	if err != nil {
		return err
	}

	if req.CourseCode != nil {
		course.CourseCode = *req.CourseCode
	}
	if req.CourseName != nil {
		course.CourseName = *req.CourseName
	}
	if req.Duration != nil {
		course.Duration = *req.Duration
	}
	if req.Year != nil {
		course.Year = *req.Year
	}

	if err := s.repo.Course.Update(ctx, course); err != nil {
		s.logger.Error("updating course failed", zap.Int("id", id), zap.Error(err))
		return pkgerrors.Downstream("Error updating course", err)
	}
	return nil
}

func (s *courseService) Delete(ctx context.Context, id int) error {
	if _, err := s.load(ctx, id, "Error deleting course"); err != nil {
		return err
	}
	if err := s.repo.Course.Delete(ctx, id); err != nil {
		s.logger.Error("deleting course failed", zap.Int("id", id), zap.Error(err))
		return pkgerrors.Downstream("Error deleting course", err)
	}
	return nil
}

func (s *courseService) load(ctx context.Context, id int, failMsg string) (*model.Course, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("loading course failed", zap.Int("id", id), zap.Error(err))
		return nil, pkgerrors.Downstream(failMsg, err)
	}
	return course, nil
}
