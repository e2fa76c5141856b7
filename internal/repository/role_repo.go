package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/zainaaazz/FullStackWebApplication/internal/model"
)

// RoleRepository tblRole lookup
type RoleRepository interface {
	List(ctx context.Context) ([]model.Role, error)
}

type roleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) List(ctx context.Context) ([]model.Role, error) {
	roles := make([]model.Role, 0, 3)
	err := r.db.WithContext(ctx).Order("RoleID").Find(&roles).Error
	return roles, err
}
