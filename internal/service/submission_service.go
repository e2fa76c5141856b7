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

// SubmissionService assignment submissions
type SubmissionService interface {
	// Create submits for studentId, or for the caller when it is omitted.
	// A Student caller can only submit for themselves.
	Create(ctx context.Context, req *dto.CreateSubmissionRequest, caller Caller) (*model.Submission, error)
	List(ctx context.Context, q *dto.SubmissionListQuery) ([]model.Submission, error)
	GetByID(ctx context.Context, id int) (*model.Submission, error)
	Update(ctx context.Context, id int, req *dto.UpdateSubmissionRequest) error
	// Delete removes a submission; a Student caller only their own
	Delete(ctx context.Context, id int, caller Caller) error
}

type submissionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSubmissionService creates a SubmissionService
func NewSubmissionService(repo *repository.Repository, logger *zap.Logger) SubmissionService {
	return &submissionService{repo: repo, logger: logger}
}

func (s *submissionService) Create(ctx context.Context, req *dto.CreateSubmissionRequest, caller Caller) (*model.Submission, error) {
	studentID := caller.UserID
	if req.StudentID != nil {
		studentID = *req.StudentID
	}
	if caller.IsStudent() && studentID != caller.UserID {
		return nil, ErrNotOwner
	}

	if err := ensureUserRole(ctx, s.repo.User, studentID, ErrSubmitterRef, model.RoleStudent, model.RoleAdmin); err != nil {
		return nil, err
	}
	_, err := s.repo.Assignment.GetByID(ctx, req.AssignmentID)
	if err := ensureExists(err, ErrAssignmentRef); err != nil {
		return nil, err
	}
	if req.VideoID != nil {
		_, err := s.repo.Video.GetByID(ctx, *req.VideoID)
		if err := ensureExists(err, ErrVideoRef); err != nil {
			return nil, err
		}
	}

	submission := &model.Submission{
		StudentID:      studentID,
		AssignmentID:   req.AssignmentID,
		SubmissionText: req.SubmissionText,
		VideoID:        req.VideoID,
		Status:         model.StatusSubmitted,
	}
	if err := s.repo.Submission.Create(ctx, submission); err != nil {
		s.logger.Error("submitting assignment failed",
			zap.Int("student_id", studentID),
			zap.Int("assignment_id", req.AssignmentID),
			zap.Error(err),
		)
		return nil, pkgerrors.Downstream("Error submitting assignment", err)
	}
	return submission, nil
}

func (s *submissionService) List(ctx context.Context, q *dto.SubmissionListQuery) ([]model.Submission, error) {
	submissions, err := s.repo.Submission.List(ctx, q.AssignmentID)
	if err != nil {
		s.logger.Error("listing submissions failed", zap.Error(err))
		return nil, pkgerrors.Downstream("Error retrieving submissions", err)
	}
	return submissions, nil
}

func (s *submissionService) GetByID(ctx context.Context, id int) (*model.Submission, error) {
	return s.load(ctx, id, "Error retrieving submission")
}

func (s *submissionService) Update(ctx context.Context, id int, req *dto.UpdateSubmissionRequest) error {
	if err := validateStatus(req.Status); err != nil {
		return err
	}

	submission, err := s.load(ctx, id, "Error updating submission status")
	if err != nil {
		return err
	}

	submission.Status = req.Status
	if req.SubmissionText != nil {
		submission.SubmissionText = *req.SubmissionText
	}

	if err := s.repo.Submission.Update(ctx, submission); err != nil {
		s.logger.Error("updating submission failed", zap.Int("id", id), zap.Error(err))
		return pkgerrors.Downstream("Error updating submission status", err)
	}
	return nil
}

func (s *submissionService) Delete(ctx context.Context, id int, caller Caller) error {
	sub, err := s.load(ctx, id, "Error deleting submission")
	if err != nil {
		return err
	}
	if caller.IsStudent() && sub.StudentID != caller.UserID {
		return ErrNotOwner
	}
	if err := s.repo.Submission.Delete(ctx, id); err != nil {
		s.logger.Error("deleting submission failed", zap.Int("id", id), zap.Error(err))
		return pkgerrors.Downstream("Error deleting submission", err)
	}
	return nil
}

func (s *submissionService) load(ctx context.Context, id int, failMsg string) (*model.Submission, error) {
	sub, err := s.repo.Submission.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		s.logger.Error("loading submission failed", zap.Int("id", id), zap.Error(err))
		return nil, pkgerrors.Downstream(failMsg, err)
	}
	return sub, nil
}
