package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/zainaaazz/FullStackWebApplication/internal/dto"
	"github.com/zainaaazz/FullStackWebApplication/internal/model"
	"github.com/zainaaazz/FullStackWebApplication/internal/repository"
	pkgerrors "github.com/zainaaazz/FullStackWebApplication/pkg/errors"
)

// UserService user administration
type UserService interface {
	// Create registers a user; the role comes from the UserNumber's leading digit
	Create(ctx context.Context, req *dto.RegisterRequest) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int) (*model.User, error)
	Update(ctx context.Context, id int, req *dto.UpdateUserRequest) error
	Delete(ctx context.Context, id int, callerID int) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates a UserService
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *userService) Create(ctx context.Context, req *dto.RegisterRequest) (*model.User, error) {
	role, ok := RoleFromUserNumber(req.UserNumber)
	if !ok {
		return nil, ErrInvalidUserNumber
	}

	if _, err := s.repo.User.GetByUserNumber(ctx, req.UserNumber); err == nil {
		return nil, ErrUserNumberExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("checking user number failed", zap.Int("user_number", req.UserNumber), zap.Error(err))
		return nil, pkgerrors.Downstream("Error registering user", err)
	}

	if req.CourseID != nil {
		_, err := s.repo.Course.GetByID(ctx, *req.CourseID)
		if err := ensureExists(err, ErrCourseRef); err != nil {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hashing password failed", zap.Error(err))
		return nil, pkgerrors.Downstream("Error registering user", err)
	}

	user := &model.User{
		UserNumber:   req.UserNumber,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		UserRole:     role,
		CourseID:     req.CourseID,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("creating user failed", zap.Int("user_number", req.UserNumber), zap.Error(err))
		return nil, pkgerrors.Downstream("Error registering user", err)
	}

	s.logger.Info("user registered",
		zap.Int("user_id", user.UserID),
		zap.String("role", role),
	)
	return user, nil
}

// ────────────────────── List / GetByID ──────────────────────

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("listing users failed", zap.Error(err))
		return nil, pkgerrors.Downstream("Error retrieving users", err)
	}
	return users, nil
}

func (s *userService) GetByID(ctx context.Context, id int) (*model.User, error) {
	return s.load(ctx, id, "Error retrieving user")
}

// ────────────────────── Update ──────────────────────

func (s *userService) Update(ctx context.Context, id int, req *dto.UpdateUserRequest) error {
	user, err := s.load(ctx, id, "Error updating user")
	if err != nil {
		return err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.UserRole != nil {
		if !model.ValidRole(*req.UserRole) {
			return ErrInvalidRole
		}
		user.UserRole = *req.UserRole
	}
	if req.CourseID != nil {
		_, err := s.repo.Course.GetByID(ctx, *req.CourseID)
		if err := ensureExists(err, ErrCourseRef); err != nil {
			return err
		}
		user.CourseID = req.CourseID
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("hashing password failed", zap.Error(err))
			return pkgerrors.Downstream("Error updating user", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("updating user failed", zap.Int("id", id), zap.Error(err))
		return pkgerrors.Downstream("Error updating user", err)
	}
	return nil
}

// ────────────────────── Delete ──────────────────────

func (s *userService) Delete(ctx context.Context, id int, callerID int) error {
	if id == callerID {
		return ErrSelfDelete
	}

	if _, err := s.load(ctx, id, "Error deleting user"); err != nil {
		return err
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		s.logger.Error("deleting user failed", zap.Int("id", id), zap.Error(err))
		return pkgerrors.Downstream("Error deleting user", err)
	}
	return nil
}

func (s *userService) load(ctx context.Context, id int, failMsg string) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("loading user failed", zap.Int("id", id), zap.Error(err))
		return nil, pkgerrors.Downstream(failMsg, err)
	}
	return user, nil
}
