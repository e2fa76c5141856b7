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

// AssignmentService module assignments
type AssignmentService interface {
	Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*model.Assignment, error)
	List(ctx context.Context) ([]model.Assignment, error)
	ListByModule(ctx context.Context, moduleID int) ([]model.Assignment, error)
	GetByID(ctx context.Context, id int) (*model.Assignment, error)
	Update(ctx context.Context, id int, req *dto.UpdateAssignmentRequest) error
	Delete(ctx context.Context, id int) error
}

type assignmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAssignmentService creates an AssignmentService
func NewAssignmentService(repo *repository.Repository, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, logger: logger}
}

func (s *assignmentService) Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*model.Assignment, error) {
	_, err := s.repo.Module.GetByID(ctx, req.ModuleID)
	if err := ensureExists(err, ErrModuleRef); err != nil {
		return nil, err
	}

	assignment := &model.Assignment{
		Title:        req.Title,
		Instructions: req.Instructions,
		DueDate:      req.DueDate,
		ModuleID:     req.ModuleID,
	}
	if err := s.repo.Assignment.Create(ctx, assignment); err != nil {
		s.logger.Error("creating assignment failed", zap.Int("module_id", req.ModuleID), zap.Error(err))
		return nil, pkgerrors.Downstream("Error creating assignment", err)
	}
	return assignment, nil
}

func (s *assignmentService) List(ctx context.Context) ([]model.Assignment, error) {
	assignments, err := s.repo.Assignment.List(ctx)
	if err != nil {
		s.logger.Error("listing assignments failed", zap.Error(err))
		return nil, pkgerrors.Downstream("Error retrieving assignments", err)
	}
	return assignments, nil
}

func (s *assignmentService) ListByModule(ctx context.Context, moduleID int) ([]model.Assignment, error) {
	assignments, err := s.repo.Assignment.ListByModule(ctx, moduleID)
	if err != nil {
		s.logger.Error("listing module assignments failed", zap.Int("module_id", moduleID), zap.Error(err))
		return nil, pkgerrors.Downstream("Error retrieving assignments", err)
	}
	return assignments, nil
}

func (s *assignmentService) GetByID(ctx context.Context, id int) (*model.Assignment, error) {
	return s.load(ctx, id, "Error retrieving assignment")
}

func (s *assignmentService) Update(ctx context.Context, id int, req *dto.UpdateAssignmentRequest) error {
	assignment, err := s.load(ctx, id, "Error updating assignment")
	if err != nil {
		return err
	}

	if req.Title != nil {
		assignment.Title = *req.Title
	}
	if req.Instructions != nil {
		assignment.Instructions = *req.Instructions
	}
	if req.DueDate != nil {
		assignment.DueDate = *req.DueDate
	}
	if req.ModuleID != nil {
		_, err := s.repo.Module.GetByID(ctx, *req.ModuleID)
		if err := ensureExists(err, ErrModuleRef); err != nil {
			return err
		}
		assignment.ModuleID = *req.ModuleID
	}

	if err := s.repo.Assignment.Update(ctx, assignment); err != nil {
		s.logger.Error("updating assignment failed", zap.Int("id", id), zap.Error(err))
		return pkgerrors.Downstream("Error updating assignment", err)
	}
	return nil
}

func (s *assignmentService) Delete(ctx context.Context, id int) error {
	if _, err := s.load(ctx, id, "Error deleting assignment"); err != nil {
		return err
	}
	if err := s.repo.Assignment.Delete(ctx, id); err != nil {
		s.logger.Error("deleting assignment failed", zap.Int("id", id), zap.Error(err))
		return pkgerrors.Downstream("Error deleting assignment", err)
	}
	return nil
}

func (s *assignmentService) load(ctx context.Context, id int, failMsg string) (*model.Assignment, error) {
	a, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("loading assignment failed", zap.Int("id", id), zap.Error(err))
		return nil, pkgerrors.Downstream(failMsg, err)
	}
	return a, nil
}
