package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/zainaaazz/FullStackWebApplication/internal/model"
	"github.com/zainaaazz/FullStackWebApplication/internal/repository"
	pkgerrors "github.com/zainaaazz/FullStackWebApplication/pkg/errors"
)

// ExportService marking exports
//
// The workbook has one sheet with a row per submission of the assignment;
// submissions without feedback leave Mark and Feedback empty.
type ExportService interface {
	// ExportFeedback returns the .xlsx content and a suggested file name
	ExportFeedback(ctx context.Context, assignmentID int) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

var exportHeaders = []string{"Submission ID", "Student Number", "First Name", "Last Name", "Status", "Mark", "Feedback"}

func (s *exportService) ExportFeedback(ctx context.Context, assignmentID int) (*bytes.Buffer, string, error) {
	const failMsg = "Error exporting feedback"

	// 1. assignment
	assignment, err := s.repo.Assignment.GetByID(ctx, assignmentID)
	if err := ensureExists(err, ErrAssignmentNotFound); err != nil {
		return nil, "", s.downstream(failMsg, err)
	}

	// 2. submissions, students, feedback
	submissions, err := s.repo.Submission.List(ctx, &assignmentID)
	if err != nil {
		return nil, "", s.downstream(failMsg, err)
	}

	studentIDs := make([]int, 0, len(submissions))
	submissionIDs := make([]int, 0, len(submissions))
	for _, sub := range submissions {
		studentIDs = append(studentIDs, sub.StudentID)
		submissionIDs = append(submissionIDs, sub.SubmissionID)
	}

	students, err := s.repo.User.ListByIDs(ctx, studentIDs)
	if err != nil {
		return nil, "", s.downstream(failMsg, err)
	}
	studentByID := make(map[int]*model.User, len(students))
	for i := range students {
		studentByID[students[i].UserID] = &students[i]
	}

	feedback, err := s.repo.Feedback.ListBySubmissionIDs(ctx, submissionIDs)
	if err != nil {
		return nil, "", s.downstream(failMsg, err)
	}
	feedbackBySubmission := make(map[int]*model.Feedback, len(feedback))
	for i := range feedback {
		feedbackBySubmission[feedback[i].SubmissionID] = &feedback[i]
	}

	// 3. workbook
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Feedback"
	idx, _ := f.NewSheet(sheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "B", 16)
	f.SetColWidth(sheet, "C", "E", 18)
	f.SetColWidth(sheet, "F", "F", 8)
	f.SetColWidth(sheet, "G", "G", 60)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	f.SetCellStyle(sheet, "A1", lastHeader, headerStyle)

	for r, sub := range submissions {
		row := r + 2
		values := []interface{}{sub.SubmissionID, "", "", "", sub.Status, "", ""}
		if st, ok := studentByID[sub.StudentID]; ok {
			values[1], values[2], values[3] = st.UserNumber, st.FirstName, st.LastName
		}
		if fb, ok := feedbackBySubmission[sub.SubmissionID]; ok {
			values[5], values[6] = fb.Mark, fb.FeedbackText
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, "", s.downstream(failMsg, err)
	}

	filename := fmt.Sprintf("feedback_assignment_%d.xlsx", assignment.AssignmentID)
	return buf, filename, nil
}

// downstream logs and wraps err unless it is already a client-facing error
func (s *exportService) downstream(msg string, err error) error {
	switch pkgerrors.KindOf(err) {
	case pkgerrors.KindNotFound, pkgerrors.KindValidation:
		return err
	}
	s.logger.Error("exporting feedback failed", zap.Error(err))
	return pkgerrors.Downstream(msg, err)
}
