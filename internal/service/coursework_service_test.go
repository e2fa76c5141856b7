package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/zainaaazz/FullStackWebApplication/internal/dto"
	"github.com/zainaaazz/FullStackWebApplication/internal/model"
	pkgerrors "github.com/zainaaazz/FullStackWebApplication/pkg/errors"
)

// ── courses ──

func TestCourseService_Lifecycle(t *testing.T) {
	repo, _ := newMockRepos()
	svc := NewCourseService(repo, zap.NewNop())
	ctx := context.Background()

	c, err := svc.Create(ctx, &dto.CreateCourseRequest{CourseCode: "BSC-IT", CourseName: "BSc IT", Duration: 3, Year: 2026})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}

	name := "BSc Information Technology"
	if err := svc.Update(ctx, c.CourseID, &dto.UpdateCourseRequest{CourseName: &name}); err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	got, err := svc.GetByID(ctx, c.CourseID)
	if err != nil {
		t.Fatalf("GetByID should succeed: %v", err)
	}
	if got.CourseName != name || got.CourseCode != "BSC-IT" || got.Duration != 3 {
		t.Errorf("partial update should keep omitted fields, got: %+v", got)
	}

	if err := svc.Delete(ctx, c.CourseID); err != nil {
		t.Fatalf("Delete should succeed: %v", err)
	}
	if _, err := svc.GetByID(ctx, c.CourseID); !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("expected ErrCourseNotFound after delete, got: %v", err)
	}
}

func TestCourseService_MissingID(t *testing.T) {
	repo, _ := newMockRepos()
	svc := NewCourseService(repo, zap.NewNop())
	ctx := context.Background()

	year := 2027
	if err := svc.Update(ctx, 99, &dto.UpdateCourseRequest{Year: &year}); !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("Update: expected ErrCourseNotFound, got: %v", err)
	}
	if err := svc.Delete(ctx, 99); !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("Delete: expected ErrCourseNotFound, got: %v", err)
	}
}

// ── assignments ──

func TestAssignmentService_CreateAndListByModule(t *testing.T) {
	repo, m := newMockRepos()
	svc := NewAssignmentService(repo, zap.NewNop())
	ctx := context.Background()
	_ = m.modules.Create(ctx, &model.Module{ModuleCode: "CMPG311", ModuleName: "Databases"})

	a, err := svc.Create(ctx, &dto.CreateAssignmentRequest{
		Title:    "ERD",
		DueDate:  time.Now().Add(48 * time.Hour),
		ModuleID: 1,
	})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if a.AssignmentID == 0 {
		t.Error("AssignmentID should be set")
	}

	list, err := svc.ListByModule(ctx, 1)
	if err != nil || len(list) != 1 {
		t.Fatalf("expected 1 assignment for module 1, got %d (%v)", len(list), err)
	}
	empty, _ := svc.ListByModule(ctx, 2)
	if empty == nil || len(empty) != 0 {
		t.Errorf("unknown module should give an empty, non-nil list: %v", empty)
	}
}

func TestAssignmentService_Create_UnknownModule(t *testing.T) {
	repo, _ := newMockRepos()
	svc := NewAssignmentService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), &dto.CreateAssignmentRequest{Title: "X", DueDate: time.Now(), ModuleID: 5})
	if !errors.Is(err, ErrModuleRef) {
		t.Errorf("expected ErrModuleRef, got: %v", err)
	}
}

func TestAssignmentService_List_DownstreamFailure(t *testing.T) {
	repo, m := newMockRepos()
	m.assignments.err = errors.New("login timeout")
	svc := NewAssignmentService(repo, zap.NewNop())

	_, err := svc.List(context.Background())
	if pkgerrors.KindOf(err) != pkgerrors.KindDownstream {
		t.Errorf("expected downstream error, got: %v", err)
	}
	var e *pkgerrors.Error
	if errors.As(err, &e) && e.Message != "Error retrieving assignments" {
		t.Errorf("client message must not carry the cause, got %q", e.Message)
	}
}

// ── submissions ──

func setupSubmission(t *testing.T) (SubmissionService, *mockRepos, *model.User) {
	t.Helper()
	repo, m := newMockRepos()
	_ = m.assignments.Create(context.Background(), &model.Assignment{Title: "Essay", DueDate: time.Now(), ModuleID: 1})
	student := seedUser(m, 42345678, model.RoleStudent, "pw")
	return NewSubmissionService(repo, zap.NewNop()), m, student
}

func TestSubmissionService_Create_DefaultsToCaller(t *testing.T) {
	svc, _, student := setupSubmission(t)

	sub, err := svc.Create(context.Background(), &dto.CreateSubmissionRequest{AssignmentID: 1, SubmissionText: "done"}, callerOf(student))
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if sub.StudentID != student.UserID {
		t.Errorf("expected StudentID=%d, got %d", student.UserID, sub.StudentID)
	}
	if sub.Status != model.StatusSubmitted {
		t.Errorf("expected status Submitted, got %s", sub.Status)
	}
}

func TestSubmissionService_Create_RejectsLecturer(t *testing.T) {
	svc, m, _ := setupSubmission(t)
	lecturer := seedUser(m, 12345678, model.RoleLecture, "pw")

	_, err := svc.Create(context.Background(), &dto.CreateSubmissionRequest{AssignmentID: 1}, callerOf(lecturer))
	if !errors.Is(err, ErrSubmitterRef) {
		t.Errorf("expected ErrSubmitterRef, got: %v", err)
	}
}

func TestSubmissionService_Create_UnknownReferences(t *testing.T) {
	svc, _, student := setupSubmission(t)

	if _, err := svc.Create(context.Background(), &dto.CreateSubmissionRequest{AssignmentID: 8}, callerOf(student)); !errors.Is(err, ErrAssignmentRef) {
		t.Errorf("expected ErrAssignmentRef, got: %v", err)
	}
	req := &dto.CreateSubmissionRequest{AssignmentID: 1, VideoID: intPtr(3)}
	if _, err := svc.Create(context.Background(), req, callerOf(student)); !errors.Is(err, ErrVideoRef) {
		t.Errorf("expected ErrVideoRef, got: %v", err)
	}
}

func TestSubmissionService_Update_Status(t *testing.T) {
	svc, m, student := setupSubmission(t)
	sub, _ := svc.Create(context.Background(), &dto.CreateSubmissionRequest{AssignmentID: 1}, callerOf(student))

	if err := svc.Update(context.Background(), sub.SubmissionID, &dto.UpdateSubmissionRequest{Status: "Graded"}); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got: %v", err)
	}
	if err := svc.Update(context.Background(), sub.SubmissionID, &dto.UpdateSubmissionRequest{Status: model.StatusNotSubmitted}); err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if got := m.submissions.rows[sub.SubmissionID].Status; got != model.StatusNotSubmitted {
		t.Errorf("expected status Not Submitted, got %s", got)
	}
	if err := svc.Update(context.Background(), 99, &dto.UpdateSubmissionRequest{Status: model.StatusSubmitted}); !errors.Is(err, ErrSubmissionNotFound) {
		t.Errorf("expected ErrSubmissionNotFound, got: %v", err)
	}
}

func TestSubmissionService_List_FilterByAssignment(t *testing.T) {
	svc, m, student := setupSubmission(t)
	_ = m.assignments.Create(context.Background(), &model.Assignment{Title: "Quiz", DueDate: time.Now(), ModuleID: 1})
	_, _ = svc.Create(context.Background(), &dto.CreateSubmissionRequest{AssignmentID: 1}, callerOf(student))
	_, _ = svc.Create(context.Background(), &dto.CreateSubmissionRequest{AssignmentID: 2}, callerOf(student))

	all, _ := svc.List(context.Background(), &dto.SubmissionListQuery{})
	filtered, _ := svc.List(context.Background(), &dto.SubmissionListQuery{AssignmentID: intPtr(2)})
	if len(all) != 2 || len(filtered) != 1 || filtered[0].AssignmentID != 2 {
		t.Errorf("unexpected lists: all=%d filtered=%v", len(all), filtered)
	}
}

func TestSubmissionService_Create_StudentCannotSubmitForOthers(t *testing.T) {
	svc, m, student := setupSubmission(t)
	other := seedUser(m, 32345678, model.RoleStudent, "pw")

	_, err := svc.Create(context.Background(), &dto.CreateSubmissionRequest{StudentID: intPtr(other.UserID), AssignmentID: 1}, callerOf(student))
	if !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got: %v", err)
	}
	if pkgerrors.KindOf(err).HTTPStatus() != 403 {
		t.Errorf("expected 403, got %d", pkgerrors.KindOf(err).HTTPStatus())
	}

	admin := seedUser(m, 52345678, model.RoleAdmin, "pw")
	sub, err := svc.Create(context.Background(), &dto.CreateSubmissionRequest{StudentID: intPtr(other.UserID), AssignmentID: 1}, callerOf(admin))
	if err != nil {
		t.Fatalf("admin may submit on behalf of a student: %v", err)
	}
	if sub.StudentID != other.UserID {
		t.Errorf("expected StudentID=%d, got %d", other.UserID, sub.StudentID)
	}
}

func TestSubmissionService_Delete_Ownership(t *testing.T) {
	svc, m, student := setupSubmission(t)
	other := seedUser(m, 32345678, model.RoleStudent, "pw")
	sub, _ := svc.Create(context.Background(), &dto.CreateSubmissionRequest{AssignmentID: 1}, callerOf(student))

	if err := svc.Delete(context.Background(), sub.SubmissionID, callerOf(other)); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got: %v", err)
	}
	if _, ok := m.submissions.rows[sub.SubmissionID]; !ok {
		t.Fatal("submission must survive a rejected delete")
	}
	if err := svc.Delete(context.Background(), sub.SubmissionID, callerOf(student)); err != nil {
		t.Fatalf("owner delete should succeed: %v", err)
	}
	if err := svc.Delete(context.Background(), sub.SubmissionID, callerOf(student)); !errors.Is(err, ErrSubmissionNotFound) {
		t.Errorf("expected ErrSubmissionNotFound, got: %v", err)
	}
}

// ── feedback ──

func setupFeedback(t *testing.T) (FeedbackService, *mockRepos, *model.User) {
	t.Helper()
	repo, m := newMockRepos()
	lecturer := seedUser(m, 12345678, model.RoleLecture, "pw")
	_ = m.submissions.Create(context.Background(), &model.Submission{StudentID: 2, AssignmentID: 1, Status: model.StatusSubmitted})
	return NewFeedbackService(repo, zap.NewNop()), m, lecturer
}

func TestFeedbackService_Create(t *testing.T) {
	svc, _, lecturer := setupFeedback(t)

	fb, err := svc.Create(context.Background(), &dto.CreateFeedbackRequest{SubmissionID: 1, Mark: intPtr(68), FeedbackText: "Solid"}, lecturer.UserID)
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if fb.LectureID != lecturer.UserID || fb.Mark != 68 {
		t.Errorf("unexpected feedback: %+v", fb)
	}

	_, err = svc.Create(context.Background(), &dto.CreateFeedbackRequest{SubmissionID: 1, Mark: intPtr(70)}, lecturer.UserID)
	if !errors.Is(err, ErrFeedbackExists) {
		t.Errorf("expected ErrFeedbackExists, got: %v", err)
	}
}

func TestFeedbackService_Create_MarkRange(t *testing.T) {
	svc, _, lecturer := setupFeedback(t)

	for _, mark := range []int{-1, 101} {
		_, err := svc.Create(context.Background(), &dto.CreateFeedbackRequest{SubmissionID: 1, Mark: intPtr(mark)}, lecturer.UserID)
		if !errors.Is(err, ErrMarkOutOfRange) {
			t.Errorf("mark %d: expected ErrMarkOutOfRange, got: %v", mark, err)
		}
	}
	for _, mark := range []int{0, 100} {
		svc, _, lecturer := setupFeedback(t)
		if _, err := svc.Create(context.Background(), &dto.CreateFeedbackRequest{SubmissionID: 1, Mark: intPtr(mark)}, lecturer.UserID); err != nil {
			t.Errorf("mark %d should be accepted: %v", mark, err)
		}
	}
}

func TestFeedbackService_Create_RejectsStudentGrader(t *testing.T) {
	svc, m, _ := setupFeedback(t)
	student := seedUser(m, 42345678, model.RoleStudent, "pw")

	_, err := svc.Create(context.Background(), &dto.CreateFeedbackRequest{SubmissionID: 1, Mark: intPtr(50)}, student.UserID)
	if !errors.Is(err, ErrGraderRef) {
		t.Errorf("expected ErrGraderRef, got: %v", err)
	}
}

func TestFeedbackService_Update(t *testing.T) {
	svc, _, lecturer := setupFeedback(t)
	fb, _ := svc.Create(context.Background(), &dto.CreateFeedbackRequest{SubmissionID: 1, Mark: intPtr(60)}, lecturer.UserID)

	updated, err := svc.Update(context.Background(), fb.FeedbackID, &dto.UpdateFeedbackRequest{Mark: intPtr(65)})
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if updated.Mark != 65 {
		t.Errorf("expected Mark=65, got %d", updated.Mark)
	}
	if _, err := svc.Update(context.Background(), fb.FeedbackID, &dto.UpdateFeedbackRequest{Mark: intPtr(140)}); !errors.Is(err, ErrMarkOutOfRange) {
		t.Errorf("expected ErrMarkOutOfRange, got: %v", err)
	}
}

func TestFeedbackService_List_Capped(t *testing.T) {
	svc, m, _ := setupFeedback(t)

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	if m.feedback.lastLimit != feedbackListLimit {
		t.Errorf("expected limit %d, got %d", feedbackListLimit, m.feedback.lastLimit)
	}
}

// ── modules and enrollments ──

func TestModuleService_Create_LecturerMustBeLecture(t *testing.T) {
	repo, m := newMockRepos()
	svc := NewModuleService(repo, zap.NewNop())
	student := seedUser(m, 42345678, model.RoleStudent, "pw")
	lecturer := seedUser(m, 22345678, model.RoleLecture, "pw")

	_, err := svc.Create(context.Background(), &dto.CreateModuleRequest{ModuleCode: "CMPG323", ModuleName: "SE", LecturerID: &student.UserID})
	if !errors.Is(err, ErrLecturerRef) {
		t.Errorf("expected ErrLecturerRef, got: %v", err)
	}
	mod, err := svc.Create(context.Background(), &dto.CreateModuleRequest{ModuleCode: "CMPG323", ModuleName: "SE", LecturerID: &lecturer.UserID})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if mod.Lecturer == nil || *mod.Lecturer != lecturer.UserID {
		t.Errorf("unexpected lecturer %v", mod.Lecturer)
	}
}

func TestModuleOnCourseService_AddAndRemove(t *testing.T) {
	repo, m := newMockRepos()
	svc := NewModuleOnCourseService(repo, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Add(ctx, &dto.ModuleOnCourseRequest{CourseID: 1, ModuleID: 1}); !errors.Is(err, ErrCourseRef) {
		t.Errorf("expected ErrCourseRef, got: %v", err)
	}

	_ = m.courses.Create(ctx, &model.Course{CourseCode: "BSC-IT", CourseName: "BSc IT", Duration: 3, Year: 2026})
	_ = m.modules.Create(ctx, &model.Module{ModuleCode: "CMPG323", ModuleName: "SE"})
	link, err := svc.Add(ctx, &dto.ModuleOnCourseRequest{CourseID: 1, ModuleID: 1})
	if err != nil {
		t.Fatalf("Add should succeed: %v", err)
	}

	if err := svc.Remove(ctx, link.ID); err != nil {
		t.Fatalf("Remove should succeed: %v", err)
	}
	err = svc.Remove(ctx, link.ID)
	if !errors.Is(err, ErrModuleLinkNotFound) {
		t.Errorf("expected ErrModuleLinkNotFound, got: %v", err)
	}
	if pkgerrors.KindOf(err).HTTPStatus() != 404 {
		t.Errorf("missing link should map to 404, got %d", pkgerrors.KindOf(err).HTTPStatus())
	}
}

func TestEnrollmentService_Enroll(t *testing.T) {
	repo, m := newMockRepos()
	svc := NewEnrollmentService(repo, zap.NewNop())
	ctx := context.Background()
	_ = m.modules.Create(ctx, &model.Module{ModuleCode: "CMPG323", ModuleName: "SE"})
	student := seedUser(m, 42345678, model.RoleStudent, "pw")
	lecturer := seedUser(m, 12345678, model.RoleLecture, "pw")

	if _, err := svc.Enroll(ctx, &dto.EnrollRequest{StudentID: lecturer.UserID, ModuleID: 1}); !errors.Is(err, ErrStudentRef) {
		t.Errorf("expected ErrStudentRef, got: %v", err)
	}
	e, err := svc.Enroll(ctx, &dto.EnrollRequest{StudentID: student.UserID, ModuleID: 1})
	if err != nil {
		t.Fatalf("Enroll should succeed: %v", err)
	}
	if err := svc.Remove(ctx, e.EnrollmentID); err != nil {
		t.Fatalf("Remove should succeed: %v", err)
	}
	if err := svc.Remove(ctx, e.EnrollmentID); !errors.Is(err, ErrEnrollmentNotFound) {
		t.Errorf("expected ErrEnrollmentNotFound, got: %v", err)
	}
}

// ── roles ──

func TestRoleService_AssignRole(t *testing.T) {
	repo, m := newMockRepos()
	svc := NewRoleService(repo, zap.NewNop())
	user := seedUser(m, 42345678, model.RoleStudent, "pw")

	if err := svc.AssignRole(context.Background(), user.UserID, "Superuser"); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got: %v", err)
	}
	if err := svc.AssignRole(context.Background(), 99, model.RoleAdmin); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
	if err := svc.AssignRole(context.Background(), user.UserID, model.RoleLecture); err != nil {
		t.Fatalf("AssignRole should succeed: %v", err)
	}
	if m.users.rows[user.UserID].UserRole != model.RoleLecture {
		t.Error("role should be updated")
	}

	roles, _ := svc.List(context.Background())
	if len(roles) != 3 {
		t.Errorf("expected 3 roles, got %d", len(roles))
	}
}
