package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/zainaaazz/FullStackWebApplication/internal/model"
)

// EnrollmentRepository tblStudentModuleEnrollment access
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *model.Enrollment) error
	GetByID(ctx context.Context, id int) (*model.Enrollment, error)
	List(ctx context.Context) ([]model.Enrollment, error)
	Delete(ctx context.Context, id int) error
}

type enrollmentRepo struct {
	db *gorm.DB
}

// NewEnrollmentRepo creates an EnrollmentRepository
func NewEnrollmentRepo(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) Create(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *enrollmentRepo) GetByID(ctx context.Context, id int) (*model.Enrollment, error) {
	var e model.Enrollment
	if err := r.db.WithContext(ctx).Where("EnrollmentID = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *enrollmentRepo) List(ctx context.Context) ([]model.Enrollment, error) {
	enrollments := make([]model.Enrollment, 0)
	err := r.db.WithContext(ctx).Order("EnrollmentID").Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Enrollment{}, id).Error
}
