package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/zainaaazz/FullStackWebApplication/internal/model"
)

// SubmissionRepository tblSubmission access
type SubmissionRepository interface {
	Create(ctx context.Context, submission *model.Submission) error
	GetByID(ctx context.Context, id int) (*model.Submission, error)
	// List all submissions, or only those of assignmentID when non-nil
	List(ctx context.Context, assignmentID *int) ([]model.Submission, error)
	ListByVideoID(ctx context.Context, videoID int) ([]model.Submission, error)
	Update(ctx context.Context, submission *model.Submission) error
	Delete(ctx context.Context, id int) error
}

type submissionRepo struct {
	db *gorm.DB
}

// NewSubmissionRepo creates a SubmissionRepository
func NewSubmissionRepo(db *gorm.DB) SubmissionRepository {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) Create(ctx context.Context, submission *model.Submission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *submissionRepo) GetByID(ctx context.Context, id int) (*model.Submission, error) {
	var s model.Submission
	if err := r.db.WithContext(ctx).Where("SubmissionID = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *submissionRepo) List(ctx context.Context, assignmentID *int) ([]model.Submission, error) {
	submissions := make([]model.Submission, 0)
	db := r.db.WithContext(ctx)
	if assignmentID != nil {
		db = db.Where("AssignmentID = ?", *assignmentID)
	}
	err := db.Order("SubmissionID").Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepo) ListByVideoID(ctx context.Context, videoID int) ([]model.Submission, error) {
	submissions := make([]model.Submission, 0)
	err := r.db.WithContext(ctx).Where("VideoID = ?", videoID).Order("SubmissionID").Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepo) Update(ctx context.Context, submission *model.Submission) error {
	return r.db.WithContext(ctx).Save(submission).Error
}

func (r *submissionRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Submission{}, id).Error
}
