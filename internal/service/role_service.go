package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/zainaaazz/FullStackWebApplication/internal/model"
	"github.com/zainaaazz/FullStackWebApplication/internal/repository"
	pkgerrors "github.com/zainaaazz/FullStackWebApplication/pkg/errors"
)

// RoleService role lookup and reassignment
type RoleService interface {
	List(ctx context.Context) ([]model.Role, error)
	// AssignRole sets user id's role
	AssignRole(ctx context.Context, userID int, role string) error
}

type roleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRoleService creates a RoleService
func NewRoleService(repo *repository.Repository, logger *zap.Logger) RoleService {
	return &roleService{repo: repo, logger: logger}
}

func (s *roleService) List(ctx context.Context) ([]model.Role, error) {
	roles, err := s.repo.Role.List(ctx)
	if err != nil {
		s.logger.Error("listing roles failed", zap.Error(err))
		return nil, pkgerrors.Downstream("Error retrieving roles", err)
	}
	return roles, nil
}

func (s *roleService) AssignRole(ctx context.Context, userID int, role string) error {
	if !model.ValidRole(role) {
		return ErrInvalidRole
	}

	_, err := s.repo.User.GetByID(ctx, userID)
	if err := ensureExists(err, ErrUserNotFound); err != nil {
		return err
	}

	if err := s.repo.User.UpdateRole(ctx, userID, role); err != nil {
		s.logger.Error("updating user role failed", zap.Int("user_id", userID), zap.Error(err))
		return pkgerrors.Downstream("Error updating user role", err)
	}

	s.logger.Info("user role updated", zap.Int("user_id", userID), zap.String("role", role))
	return nil
}
