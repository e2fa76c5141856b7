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

// ModuleService modules and their placement on courses
type ModuleService interface {
	Create(ctx context.Context, req *dto.CreateModuleRequest) (*model.Module, error)
	List(ctx context.Context) ([]model.Module, error)
	GetByID(ctx context.Context, id int) (*model.Module, error)
	Update(ctx context.Context, id int, req *dto.UpdateModuleRequest) error
	Delete(ctx context.Context, id int) error
}

type moduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewModuleService creates a ModuleService
func NewModuleService(repo *repository.Repository, logger *zap.Logger) ModuleService {
	return &moduleService{repo: repo, logger: logger}
}

func (s *moduleService) Create(ctx context.Context, req *dto.CreateModuleRequest) (*model.Module, error) {
	if req.LecturerID != nil {
		if err := ensureUserRole(ctx, s.repo.User, *req.LecturerID, ErrLecturerRef, model.RoleLecture); err != nil {
			return nil, err
		}
	}

	module := &model.Module{
		ModuleCode:  req.ModuleCode,
		ModuleName:  req.ModuleName,
		Description: req.ModuleDescription,
		Lecturer:    req.LecturerID,
	}
	if err := s.repo.Module.Create(ctx, module); err != nil {
		s.logger.Error("creating module failed", zap.String("code", req.ModuleCode), zap.Error(err))
		return nil, pkgerrors.Downstream("Error creating module", err)
	}
	return module, nil
}

func (s *moduleService) List(ctx context.Context) ([]model.Module, error) {
	modules, err := s.repo.Module.List(ctx)
	if err != nil {
		s.logger.Error("listing modules failed", zap.Error(err))
		return nil, pkgerrors.Downstream("Error retrieving modules", err)
	}
	return modules, nil
}

func (s *moduleService) GetByID(ctx context.Context, id int) (*model.Module, error) {
	return s.load(ctx, id, "Error retrieving module")
}

func (s *moduleService) Update(ctx context.Context, id int, req *dto.UpdateModuleRequest) error {
	module, err := s.load(ctx, id, "Error updating module")
	if err != nil {
		return err
	}

	if req.ModuleCode != nil {
		module.ModuleCode = *req.ModuleCode
	}
	if req.ModuleName != nil {
		module.ModuleName = *req.ModuleName
	}
	if req.ModuleDescription != nil {
		module.Description = *req.ModuleDescription
	}
	if req.LecturerID != nil {
		if err := ensureUserRole(ctx, s.repo.User, *req.LecturerID, ErrLecturerRef, model.RoleLecture); err != nil {
			return err
		}
		module.Lecturer = req.LecturerID
	}

	if err := s.repo.Module.Update(ctx, module); err != nil {
		s.logger.Error("updating module failed", zap.Int("id", id), zap.Error(err))
		return pkgerrors.Downstream("Error updating module", err)
	}
	return nil
}

func (s *moduleService) Delete(ctx context.Context, id int) error {
	if _, err := s.load(ctx, id, "Error deleting module"); err != nil {
		return err
	}
	if err := s.repo.Module.Delete(ctx, id); err != nil {
		s.logger.Error("deleting module failed", zap.Int("id", id), zap.Error(err))
		return pkgerrors.Downstream("Error deleting module", err)
	}
	return nil
}

func (s *moduleService) load(ctx context.Context, id int, failMsg string) (*model.Module, error) {
	module, err := s.repo.Module.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModuleNotFound
		}
		s.logger.Error("loading module failed", zap.Int("id", id), zap.Error(err))
		return nil, pkgerrors.Downstream(failMsg, err)
	}
	return module, nil
}

// ════════════════════ module on course ════════════════════

// ModuleOnCourseService links modules to courses
type ModuleOnCourseService interface {
	Add(ctx context.Context, req *dto.ModuleOnCourseRequest) (*model.ModuleOnCourse, error)
	List(ctx context.Context) ([]model.ModuleOnCourse, error)
	Remove(ctx context.Context, id int) error
}

type moduleOnCourseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewModuleOnCourseService creates a ModuleOnCourseService
func NewModuleOnCourseService(repo *repository.Repository, logger *zap.Logger) ModuleOnCourseService {
	return &moduleOnCourseService{repo: repo, logger: logger}
}

func (s *moduleOnCourseService) Add(ctx context.Context, req *dto.ModuleOnCourseRequest) (*model.ModuleOnCourse, error) {
	_, err := s.repo.Course.GetByID(ctx, req.CourseID)
	if err := ensureExists(err, ErrCourseRef); err != nil {
		return nil, err
	}
	_, err = s.repo.Module.GetByID(ctx, req.ModuleID)
	if err := ensureExists(err, ErrModuleRef); err != nil {
		return nil, err
	}

	link := &model.ModuleOnCourse{CourseID: req.CourseID, ModuleID: req.ModuleID}
	if err := s.repo.ModuleOnCourse.Create(ctx, link); err != nil {
		s.logger.Error("adding module to course failed",
			zap.Int("course_id", req.CourseID),
			zap.Int("module_id", req.ModuleID),
			zap.Error(err),
		)
		return nil, pkgerrors.Downstream("Error adding module to course", err)
	}
	return link, nil
}

func (s *moduleOnCourseService) List(ctx context.Context) ([]model.ModuleOnCourse, error) {
	links, err := s.repo.ModuleOnCourse.List(ctx)
	if err != nil {
		s.logger.Error("listing module links failed", zap.Error(err))
		return nil, pkgerrors.Downstream("Error retrieving modules on course", err)
	}
	return links, nil
}

func (s *moduleOnCourseService) Remove(ctx context.Context, id int) error {
	if _, err := s.repo.ModuleOnCourse.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrModuleLinkNotFound
		}
		s.logger.Error("loading module link failed", zap.Int("id", id), zap.Error(err))
		return pkgerrors.Downstream("Error removing module from course", err)
	}
	if err := s.repo.ModuleOnCourse.Delete(ctx, id); err != nil {
		s.logger.Error("removing module from course failed", zap.Int("id", id), zap.Error(err))
		return pkgerrors.Downstream("Error removing module from course", err)
	}
	return nil
}
