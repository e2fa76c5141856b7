package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/zainaaazz/FullStackWebApplication/internal/model"
	"github.com/zainaaazz/FullStackWebApplication/internal/repository"
	pkgerrors "github.com/zainaaazz/FullStackWebApplication/pkg/errors"
)

// msgLookupFailed client message when a reference lookup itself fails
const msgLookupFailed = "Error validating references"

// ensureUserRole checks that user id exists and holds one of roles;
// otherwise returns invalid.
func ensureUserRole(ctx context.Context, users repository.UserRepository, id int, invalid error, roles ...string) error {
	u, err := users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invalid
		}
		return pkgerrors.Downstream(msgLookupFailed, err)
	}
	for _, r := range roles {
		if u.UserRole == r {
			return nil
		}
	}
	return invalid
}

// ensureExists turns a lookup result into nil, invalid, or a downstream failure
func ensureExists(err error, invalid error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invalid
	}
	return pkgerrors.Downstream(msgLookupFailed, err)
}

func validateMark(mark int) error {
	if mark < 0 || mark > 100 {
		return ErrMarkOutOfRange
	}
	return nil
}

func validateStatus(status string) error {
	if !model.ValidStatus(status) {
		return ErrInvalidStatus
	}
	return nil
}

// RoleFromUserNumber derives the role from the leading digit of a UserNumber:
// 1,2 Lecture; 3,4 Student; 5 Admin.
func RoleFromUserNumber(n int) (string, bool) {
	if n <= 0 {
		return "", false
	}
	for n >= 10 {
		n /= 10
	}
	switch n {
	case 1, 2:
		return model.RoleLecture, true
	case 3, 4:
		return model.RoleStudent, true
	case 5:
		return model.RoleAdmin, true
	}
	return "", false
}
