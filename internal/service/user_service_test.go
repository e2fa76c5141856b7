package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/zainaaazz/FullStackWebApplication/internal/dto"
	"github.com/zainaaazz/FullStackWebApplication/internal/model"
	pkgerrors "github.com/zainaaazz/FullStackWebApplication/pkg/errors"
)

func setupTestUserService() (UserService, *mockRepos) {
	repo, m := newMockRepos()
	return NewUserService(repo, zap.NewNop()), m
}

func registerReq(number int) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		UserNumber: number,
		Password:   "securepassword123",
		FirstName:  "Thabo",
		LastName:   "Nkosi",
		Email:      "thabo@test.nwu.ac.za",
	}
}

func TestUserService_Create_Duplicate(t *testing.T) {
	svc, _ := setupTestUserService()

	if _, err := svc.Create(context.Background(), registerReq(42345678)); err != nil {
		t.Fatalf("first Create should succeed: %v", err)
	}
	_, err := svc.Create(context.Background(), registerReq(42345678))
	if !errors.Is(err, ErrUserNumberExists) {
		t.Errorf("expected ErrUserNumberExists, got: %v", err)
	}
	if pkgerrors.KindOf(err) != pkgerrors.KindValidation {
		t.Errorf("duplicate should be a validation error, got %s", pkgerrors.KindOf(err))
	}
}

func TestUserService_Create_UnknownCourse(t *testing.T) {
	svc, _ := setupTestUserService()

	req := registerReq(42345678)
	req.CourseID = intPtr(99)
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrCourseRef) {
		t.Errorf("expected ErrCourseRef, got: %v", err)
	}
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc, _ := setupTestUserService()

	_, err := svc.GetByID(context.Background(), 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}

func TestUserService_List_Ordered(t *testing.T) {
	svc, m := setupTestUserService()
	seedUser(m, 12345678, model.RoleLecture, "pw")
	seedUser(m, 42345678, model.RoleStudent, "pw")

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].UserNumber != 12345678 {
		t.Errorf("expected id order, got %d first", users[0].UserNumber)
	}
}

func TestUserService_Update_Partial(t *testing.T) {
	svc, m := setupTestUserService()
	user := seedUser(m, 42345678, model.RoleStudent, "oldpassword")

	err := svc.Update(context.Background(), user.UserID, &dto.UpdateUserRequest{
		FirstName: strPtr("Naledi"),
	})
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}

	stored := m.users.rows[user.UserID]
	if stored.FirstName != "Naledi" {
		t.Errorf("expected FirstName=Naledi, got %s", stored.FirstName)
	}
	if stored.LastName != "User" || stored.UserRole != model.RoleStudent {
		t.Errorf("omitted fields must stay unchanged: %+v", stored)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	svc, m := setupTestUserService()
	user := seedUser(m, 42345678, model.RoleStudent, "oldpassword")

	if err := svc.Update(context.Background(), user.UserID, &dto.UpdateUserRequest{Password: strPtr("newpassword")}); err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}

	stored := m.users.rows[user.UserID]
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpassword")) != nil {
		t.Error("new password should verify against the stored hash")
	}
}

func TestUserService_Update_InvalidRole(t *testing.T) {
	svc, m := setupTestUserService()
	user := seedUser(m, 42345678, model.RoleStudent, "pw")

	err := svc.Update(context.Background(), user.UserID, &dto.UpdateUserRequest{UserRole: strPtr("Lecturer")})
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got: %v", err)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestUserService()

	err := svc.Update(context.Background(), 404, &dto.UpdateUserRequest{FirstName: strPtr("X")})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}

func TestUserService_Delete_Success(t *testing.T) {
	svc, m := setupTestUserService()
	admin := seedUser(m, 52345678, model.RoleAdmin, "pw")
	student := seedUser(m, 42345678, model.RoleStudent, "pw")

	if err := svc.Delete(context.Background(), student.UserID, admin.UserID); err != nil {
		t.Fatalf("Delete should succeed: %v", err)
	}
	if _, ok := m.users.rows[student.UserID]; ok {
		t.Error("user should be removed")
	}
}

func TestUserService_Delete_SelfProtection(t *testing.T) {
	svc, m := setupTestUserService()
	admin := seedUser(m, 52345678, model.RoleAdmin, "pw")

	err := svc.Delete(context.Background(), admin.UserID, admin.UserID)
	if !errors.Is(err, ErrSelfDelete) {
		t.Errorf("expected ErrSelfDelete, got: %v", err)
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc, m := setupTestUserService()
	admin := seedUser(m, 52345678, model.RoleAdmin, "pw")

	err := svc.Delete(context.Background(), 404, admin.UserID)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}

func TestRoleFromUserNumber(t *testing.T) {
	tests := []struct {
		n    int
		role string
		ok   bool
	}{
		{1, model.RoleLecture, true},
		{29999999, model.RoleLecture, true},
		{30000000, model.RoleStudent, true},
		{42345678, model.RoleStudent, true},
		{5, model.RoleAdmin, true},
		{60000000, "", false},
		{0, "", false},
		{-4, "", false},
	}
	for _, tt := range tests {
		role, ok := RoleFromUserNumber(tt.n)
		if role != tt.role || ok != tt.ok {
			t.Errorf("RoleFromUserNumber(%d) = (%q, %v), want (%q, %v)", tt.n, role, ok, tt.role, tt.ok)
		}
	}
}
