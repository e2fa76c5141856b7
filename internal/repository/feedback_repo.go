package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/zainaaazz/FullStackWebApplication/internal/model"
)

// FeedbackRepository tblFeedback access
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	GetByID(ctx context.Context, id int) (*model.Feedback, error)
	GetBySubmissionID(ctx context.Context, submissionID int) (*model.Feedback, error)
	List(ctx context.Context, limit int) ([]model.Feedback, error)
	ListBySubmissionIDs(ctx context.Context, submissionIDs []int) ([]model.Feedback, error)
	Update(ctx context.Context, feedback *model.Feedback) error
	Delete(ctx context.Context, id int) error
}

type feedbackRepo struct {
	db *gorm.DB
}

// NewFeedbackRepo creates a FeedbackRepository
func NewFeedbackRepo(db *gorm.DB) FeedbackRepository {
	return &feedbackRepo{db: db}
}

func (r *feedbackRepo) Create(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepo) GetByID(ctx context.Context, id int) (*model.Feedback, error) {
	var f model.Feedback
	if err := r.db.WithContext(ctx).Where("FeedbackID = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *feedbackRepo) GetBySubmissionID(ctx context.Context, submissionID int) (*model.Feedback, error) {
	var f model.Feedback
	if err := r.db.WithContext(ctx).Where("SubmissionID = ?", submissionID).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *feedbackRepo) List(ctx context.Context, limit int) ([]model.Feedback, error) {
	feedback := make([]model.Feedback, 0)
	err := r.db.WithContext(ctx).
		Order("FeedbackID").
		Limit(limit).
		Find(&feedback).Error
	return feedback, err
}

func (r *feedbackRepo) ListBySubmissionIDs(ctx context.Context, submissionIDs []int) ([]model.Feedback, error) {
	feedback := make([]model.Feedback, 0, len(submissionIDs))
	if len(submissionIDs) == 0 {
		return feedback, nil
	}
	err := r.db.WithContext(ctx).
		Where("SubmissionID IN ?", submissionIDs).
		Find(&feedback).Error
	return feedback, err
}

func (r *feedbackRepo) Update(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Save(feedback).Error
}

func (r *feedbackRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Feedback{}, id).Error
}
