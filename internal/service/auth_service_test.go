package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/zainaaazz/FullStackWebApplication/config"
	"github.com/zainaaazz/FullStackWebApplication/internal/dto"
	"github.com/zainaaazz/FullStackWebApplication/internal/model"
	"github.com/zainaaazz/FullStackWebApplication/pkg/jwt"
)

func setupTestAuthService() (AuthService, *mockRepos, *jwt.Manager) {
	repo, m := newMockRepos()
	jwtMgr := jwt.NewManager(&config.AuthConfig{
		JWTSecret:      "test-secret-key-for-unit-testing-2024",
		AccessTokenTTL: time.Hour,
	})
	logger := zap.NewNop()
	users := NewUserService(repo, logger)
	return NewAuthService(repo, users, jwtMgr, logger), m, jwtMgr
}

// ── login ──

func TestLogin_Success(t *testing.T) {
	svc, m, jwtMgr := setupTestAuthService()
	user := seedUser(m, 42345678, model.RoleStudent, "securepassword123")
	user.CourseID = intPtr(2)

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		UserNumber: 42345678,
		Password:   "securepassword123",
	})
	if err != nil {
		t.Fatalf("Login should succeed: %v", err)
	}
	if result.AccessToken == "" {
		t.Fatal("AccessToken should not be empty")
	}

	claims, err := jwtMgr.ParseToken(result.AccessToken)
	if err != nil {
		t.Fatalf("issued token should verify: %v", err)
	}
	if claims.UserID != user.UserID || claims.UserNumber != 42345678 {
		t.Errorf("unexpected identity in token: %+v", claims)
	}
	if claims.UserRole != model.RoleStudent {
		t.Errorf("expected role Student, got %s", claims.UserRole)
	}
	if claims.CourseID == nil || *claims.CourseID != 2 {
		t.Errorf("expected CourseID=2, got %v", claims.CourseID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, m, _ := setupTestAuthService()
	seedUser(m, 42345678, model.RoleStudent, "securepassword123")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		UserNumber: 42345678,
		Password:   "wrong_password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestLogin_UserNotFound(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		UserNumber: 49999999,
		Password:   "securepassword123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}

// ── register ──

func TestRegister_DerivesRole(t *testing.T) {
	tests := []struct {
		number int
		role   string
	}{
		{12345678, model.RoleLecture},
		{22345678, model.RoleLecture},
		{32345678, model.RoleStudent},
		{42345678, model.RoleStudent},
		{52345678, model.RoleAdmin},
	}

	for _, tt := range tests {
		svc, m, _ := setupTestAuthService()
		id, err := svc.Register(context.Background(), &dto.RegisterRequest{
			UserNumber: tt.number,
			Password:   "securepassword123",
			FirstName:  "Lerato",
			LastName:   "Mokoena",
			Email:      "lerato@test.nwu.ac.za",
		})
		if err != nil {
			t.Fatalf("Register(%d) should succeed: %v", tt.number, err)
		}
		stored := m.users.rows[id]
		if stored == nil {
			t.Fatalf("Register(%d) did not store the user", tt.number)
		}
		if stored.UserRole != tt.role {
			t.Errorf("Register(%d): expected role %s, got %s", tt.number, tt.role, stored.UserRole)
		}
		if stored.PasswordHash == "securepassword123" {
			t.Error("password must be stored hashed")
		}
	}
}

func TestRegister_InvalidUserNumber(t *testing.T) {
	svc, m, _ := setupTestAuthService()

	for _, n := range []int{0, 62345678, 92345678} {
		_, err := svc.Register(context.Background(), &dto.RegisterRequest{
			UserNumber: n,
			Password:   "securepassword123",
			FirstName:  "A",
			LastName:   "B",
			Email:      "a@b.c",
		})
		if !errors.Is(err, ErrInvalidUserNumber) {
			t.Errorf("Register(%d): expected ErrInvalidUserNumber, got: %v", n, err)
		}
	}
	if len(m.users.rows) != 0 {
		t.Errorf("no user should be stored, got %d", len(m.users.rows))
	}
}

func TestRegister_ThenLogin(t *testing.T) {
	svc, _, _ := setupTestAuthService()
	req := &dto.RegisterRequest{
		UserNumber: 32345678,
		Password:   "securepassword123",
		FirstName:  "Sipho",
		LastName:   "Dlamini",
		Email:      "sipho@test.nwu.ac.za",
	}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("Register should succeed: %v", err)
	}

	result, err := svc.Login(context.Background(), &dto.LoginRequest{UserNumber: 32345678, Password: "securepassword123"})
	if err != nil {
		t.Fatalf("Login after register should succeed: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("AccessToken should not be empty")
	}
}
