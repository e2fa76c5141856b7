package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/zainaaazz/FullStackWebApplication/internal/model"
)

// ModuleRepository tblModule access
type ModuleRepository interface {
	Create(ctx context.Context, module *model.Module) error
	GetByID(ctx context.Context, id int) (*model.Module, error)
	List(ctx context.Context) ([]model.Module, error)
	Update(ctx context.Context, module *model.Module) error
	Delete(ctx context.Context, id int) error
}

type moduleRepo struct {
	db *gorm.DB
}

// NewModuleRepo creates a ModuleRepository
func NewModuleRepo(db *gorm.DB) ModuleRepository {
	return &moduleRepo{db: db}
}

func (r *moduleRepo) Create(ctx context.Context, module *model.Module) error {
	return r.db.WithContext(ctx).Create(module).Error
}

func (r *moduleRepo) GetByID(ctx context.Context, id int) (*model.Module, error) {
	var module model.Module
	if err := r.db.WithContext(ctx).Where("ModuleID = ?", id).First(&module).Error; err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *moduleRepo) List(ctx context.Context) ([]model.Module, error) {
	modules := make([]model.Module, 0)
	err := r.db.WithContext(ctx).Order("ModuleID").Find(&modules).Error
	return modules, err
}

func (r *moduleRepo) Update(ctx context.Context, module *model.Module) error {
	return r.db.WithContext(ctx).Save(module).Error
}

func (r *moduleRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Module{}, id).Error
}

// ── module on course ──

// ModuleOnCourseRepository tblModuleOnCourse access
type ModuleOnCourseRepository interface {
	Create(ctx context.Context, link *model.ModuleOnCourse) error
	GetByID(ctx context.Context, id int) (*model.ModuleOnCourse, error)
	List(ctx context.Context) ([]model.ModuleOnCourse, error)
	Delete(ctx context.Context, id int) error
}

type moduleOnCourseRepo struct {
	db *gorm.DB
}

func NewModuleOnCourseRepo(db *gorm.DB) ModuleOnCourseRepository {
	return &moduleOnCourseRepo{db: db}
}

func (r *moduleOnCourseRepo) Create(ctx context.Context, link *model.ModuleOnCourse) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *moduleOnCourseRepo) GetByID(ctx context.Context, id int) (*model.ModuleOnCourse, error) {
	var link model.ModuleOnCourse
	if err := r.db.WithContext(ctx).Where("ID = ?", id).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *moduleOnCourseRepo) List(ctx context.Context) ([]model.ModuleOnCourse, error) {
	links := make([]model.ModuleOnCourse, 0)
	err := r.db.WithContext(ctx).Order("ID").Find(&links).Error
	return links, err
}

func (r *moduleOnCourseRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.ModuleOnCourse{}, id).Error
}
