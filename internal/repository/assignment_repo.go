package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/zainaaazz/FullStackWebApplication/internal/model"
)

// AssignmentRepository tblAssignment access
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *model.Assignment) error
	GetByID(ctx context.Context, id int) (*model.Assignment, error)
	List(ctx context.Context) ([]model.Assignment, error)
	ListByModule(ctx context.Context, moduleID int) ([]model.Assignment, error)
	Update(ctx context.Context, assignment *model.Assignment) error
	Delete(ctx context.Context, id int) error
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo creates an AssignmentRepository
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(ctx context.Context, assignment *model.Assignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepo) GetByID(ctx context.Context, id int) (*model.Assignment, error) {
	var a model.Assignment
	if err := r.db.WithContext(ctx).Where("AssignmentID = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assignmentRepo) List(ctx context.Context) ([]model.Assignment, error) {
	assignments := make([]model.Assignment, 0)
	err := r.db.WithContext(ctx).Order("AssignmentID").Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepo) ListByModule(ctx context.Context, moduleID int) ([]model.Assignment, error) {
	assignments := make([]model.Assignment, 0)
	err := r.db.WithContext(ctx).
		Where("ModuleID = ?", moduleID).
		Order("DueDate").
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepo) Update(ctx context.Context, assignment *model.Assignment) error {
	return r.db.WithContext(ctx).Save(assignment).Error
}

func (r *assignmentRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Assignment{}, id).Error
}
