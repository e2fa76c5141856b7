package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/zainaaazz/FullStackWebApplication/internal/dto"
	"github.com/zainaaazz/FullStackWebApplication/internal/repository"
	pkgerrors "github.com/zainaaazz/FullStackWebApplication/pkg/errors"
	"github.com/zainaaazz/FullStackWebApplication/pkg/jwt"
)

// AuthService login and registration
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (int, error)
}

type authService struct {
	repo   *repository.Repository
	users  UserService
	jwtMgr *jwt.Manager
	logger *zap.Logger
}

// NewAuthService creates an AuthService
func NewAuthService(
	repo *repository.Repository,
	users UserService,
	jwtMgr *jwt.Manager,
	logger *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		users:  users,
		jwtMgr: jwtMgr,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. look up by UserNumber
	user, err := s.repo.User.GetByUserNumber(ctx, req.UserNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("loading user for login failed", zap.Error(err))
		return nil, pkgerrors.Downstream("Error logging in", err)
	}

	// 2. bcrypt
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. token
	token, err := s.jwtMgr.GenerateAccessToken(jwt.Subject{
		UserID:     user.UserID,
		UserNumber: user.UserNumber,
		UserRole:   user.UserRole,
		CourseID:   user.CourseID,
	})
	if err != nil {
		s.logger.Error("signing access token failed", zap.Error(err))
		return nil, pkgerrors.Downstream("Error logging in", err)
	}

	return &dto.TokenResponse{AccessToken: token}, nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (int, error) {
	user, err := s.users.Create(ctx, req)
	if err != nil {
		return 0, err
	}
	return user.UserID, nil
}
