package service

import (
	pkgerrors "github.com/zainaaazz/FullStackWebApplication/pkg/errors"
)

// ── not found ──

var (
	ErrUserNotFound       = pkgerrors.NotFound("User not found")
	ErrCourseNotFound     = pkgerrors.NotFound("Course not found")
	ErrModuleNotFound     = pkgerrors.NotFound("Module not found")
	ErrEnrollmentNotFound = pkgerrors.NotFound("Enrollment not found")
	ErrAssignmentNotFound = pkgerrors.NotFound("Assignment not found")
	ErrSubmissionNotFound = pkgerrors.NotFound("Submission not found")
	ErrFeedbackNotFound   = pkgerrors.NotFound("Feedback not found")
	ErrVideoNotFound      = pkgerrors.NotFound("Video not found")
	ErrVideoFileNotFound  = pkgerrors.NotFound("Video file not found")

	// the portal reads this message for a missing module-on-course link
	ErrModuleLinkNotFound = pkgerrors.NotFound("Module not found")

	// ErrNotOwner a student touching another student's coursework
	ErrNotOwner = pkgerrors.Forbidden("Access denied")
)

// ── auth ──

var (
	ErrInvalidCredentials = pkgerrors.Unauthorized("Invalid credentials")
	ErrInvalidUserNumber  = pkgerrors.Validation("Invalid UserNumber")
	ErrUserNumberExists   = pkgerrors.Validation("UserNumber already registered")
	ErrInvalidRole        = pkgerrors.Validation("Invalid role")
	ErrSelfDelete         = pkgerrors.Validation("Cannot delete your own account")
)

// ── references and field rules ──

var (
	ErrCourseRef      = pkgerrors.Validation("Course does not exist")
	ErrModuleRef      = pkgerrors.Validation("Module does not exist")
	ErrAssignmentRef  = pkgerrors.Validation("Assignment does not exist")
	ErrSubmissionRef  = pkgerrors.Validation("Submission does not exist")
	ErrVideoRef       = pkgerrors.Validation("Video does not exist")
	ErrLecturerRef    = pkgerrors.Validation("Lecturer must be a user with role Lecture")
	ErrStudentRef     = pkgerrors.Validation("Student must be a user with role Student")
	ErrSubmitterRef   = pkgerrors.Validation("Submitter must be a user with role Student or Admin")
	ErrGraderRef      = pkgerrors.Validation("Grader must be a user with role Lecture or Admin")
	ErrInvalidStatus  = pkgerrors.Validation("Status must be 'Submitted' or 'Not Submitted'")
	ErrMarkOutOfRange = pkgerrors.Validation("Mark must be between 0 and 100")
	ErrFeedbackExists = pkgerrors.Validation("Feedback already exists for this submission")
)
