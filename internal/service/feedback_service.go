package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zainaaazz/FullStackWebApplication/internal/dto"
	"github.com/zainaaazz/FullStackWebApplication/internal/model"
	"github.com/zainaaazz/FullStackWebApplication/internal/repository"
	pkgerrors "github.com/zainaaazz/FullStackWebApplication/pkg/errors"
)

// feedbackListLimit cap on GET /feedbacks
const feedbackListLimit = 1000

// FeedbackService lecturer feedback on submissions
type FeedbackService interface {
	// Create grades a submission as lectureId, or as the caller when it is omitted
	Create(ctx context.Context, req *dto.CreateFeedbackRequest, callerID int) (*model.Feedback, error)
	List(ctx context.Context) ([]model.Feedback, error)
	GetByID(ctx context.Context, id int) (*model.Feedback, error)
	Update(ctx context.Context, id int, req *dto.UpdateFeedbackRequest) (*model.Feedback, error)
	Delete(ctx context.Context, id int) error
}

type feedbackService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFeedbackService creates a FeedbackService
func NewFeedbackService(repo *repository.Repository, logger *zap.Logger) FeedbackService {
	return &feedbackService{repo: repo, logger: logger}
}

func (s *feedbackService) Create(ctx context.Context, req *dto.CreateFeedbackRequest, callerID int) (*model.Feedback, error) {
	if err := validateMark(*req.Mark); err != nil {
		return nil, err
	}

	lectureID := callerID
	if req.LectureID != nil {
		lectureID = *req.LectureID
	}
	if err := ensureUserRole(ctx, s.repo.User, lectureID, ErrGraderRef, model.RoleLecture, model.RoleAdmin); err != nil {
		return nil, err
	}

	_, err := s.repo.Submission.GetByID(ctx, req.SubmissionID)
	if err := ensureExists(err, ErrSubmissionRef); err != nil {
		return nil, err
	}

	switch _, err := s.repo.Feedback.GetBySubmissionID(ctx, req.SubmissionID); {
	case err == nil:
		return nil, ErrFeedbackExists
	case !errors.Is(err, gorm.ErrRecordNotFound):
		s.logger.Error("checking existing feedback failed", zap.Int("submission_id", req.SubmissionID), zap.Error(err))
		return nil, pkgerrors.Downstream("Error providing feedback", err)
	}

	feedback := &model.Feedback{
		SubmissionID: req.SubmissionID,
		LectureID:    lectureID,
		FeedbackText: req.FeedbackText,
		Mark:         *req.Mark,
	}
	if err := s.repo.Feedback.Create(ctx, feedback); err != nil {
		s.logger.Error("providing feedback failed", zap.Int("submission_id", req.SubmissionID), zap.Error(err))
		return nil, pkgerrors.Downstream("Error providing feedback", err)
	}
	return feedback, nil
}

func (s *feedbackService) List(ctx context.Context) ([]model.Feedback, error) {
	feedback, err := s.repo.Feedback.List(ctx, feedbackListLimit)
	if err != nil {
		s.logger.Error("listing feedback failed", zap.Error(err))
		return nil, pkgerrors.Downstream("Error retrieving feedback", err)
	}
	return feedback, nil
}

func (s *feedbackService) GetByID(ctx context.Context, id int) (*model.Feedback, error) {
	return s.load(ctx, id, "Error retrieving feedback")
}

func (s *feedbackService) Update(ctx context.Context, id int, req *dto.UpdateFeedbackRequest) (*model.Feedback, error) {
	feedback, err := s.load(ctx, id, "Error updating feedback")
	if err != nil {
		return nil, err
	}

	if req.FeedbackText != nil {
		feedback.FeedbackText = *req.FeedbackText
	}
	if req.Mark != nil {
		if err := validateMark(*req.Mark); err != nil {
			return nil, err
		}
		feedback.Mark = *req.Mark
	}

	if err := s.repo.Feedback.Update(ctx, feedback); err != nil {
		s.logger.Error("updating feedback failed", zap.Int("id", id), zap.Error(err))
		return nil, pkgerrors.Downstream("Error updating feedback", err)
	}
	return feedback, nil
}

func (s *feedbackService) Delete(ctx context.Context, id int) error {
	if _, err := s.load(ctx, id, "Error deleting feedback"); err != nil {
		return err
	}
	if err := s.repo.Feedback.Delete(ctx, id); err != nil {
		s.logger.Error("deleting feedback failed", zap.Int("id", id), zap.Error(err))
		return pkgerrors.Downstream("Error deleting feedback", err)
	}
	return nil
}

func (s *feedbackService) load(ctx context.Context, id int, failMsg string) (*model.Feedback, error) {
	f, err := s.repo.Feedback.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		s.logger.Error("loading feedback failed", zap.Int("id", id), zap.Error(err))
		return nil, pkgerrors.Downstream(failMsg, err)
	}
	return f, nil
}
