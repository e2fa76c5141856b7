package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/zainaaazz/FullStackWebApplication/internal/model"
)

// UserRepository tblUser access
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int) (*model.User, error)
	GetByUserNumber(ctx context.Context, userNumber int) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ListByIDs(ctx context.Context, ids []int) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	UpdateRole(ctx context.Context, id int, role string) error
	Delete(ctx context.Context, id int) error
}

// userRepo gorm implementation of UserRepository
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo creates a UserRepository
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id int) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("UserID = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByUserNumber(ctx context.Context, userNumber int) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("UserNumber = ?", userNumber).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	err := r.db.WithContext(ctx).
		Order("UserID").
		Find(&users).Error
	return users, err
}

func (r *userRepo) ListByIDs(ctx context.Context, ids []int) ([]model.User, error) {
	users := make([]model.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.WithContext(ctx).
		Where("UserID IN ?", ids).
		Find(&users).Error
	return users, err
}

func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepo) UpdateRole(ctx context.Context, id int, role string) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("UserID = ?", id).
		Update("UserRole", role).Error
}

func (r *userRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, id).Error
}
