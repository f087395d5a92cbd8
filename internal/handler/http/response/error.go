package response

import (
	"errors"
	"net/http"

	"github.com/ScriptedSpythoN/demoos/internal/domain/announcement"
	"github.com/ScriptedSpythoN/demoos/internal/domain/attendance"
	"github.com/ScriptedSpythoN/demoos/internal/domain/auth"
	"github.com/ScriptedSpythoN/demoos/internal/domain/classroom"
	"github.com/ScriptedSpythoN/demoos/internal/domain/medical"
	"github.com/ScriptedSpythoN/demoos/internal/domain/student"
	"github.com/ScriptedSpythoN/demoos/internal/domain/subject"
	"github.com/ScriptedSpythoN/demoos/internal/domain/user"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrOAuthNotConfigured):
		BadRequest(w, "Google login is not available", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrHODAccessRequired),
		errors.Is(err, user.ErrStaffAccessRequired):
		Forbidden(w, err.Error())

	// Student domain errors
	case errors.Is(err, student.ErrStudentNotFound):
		NotFound(w, "Student not found")
	case errors.Is(err, student.ErrRollNoExists):
		Conflict(w, "Roll number already registered")

	// Subject domain errors
	case errors.Is(err, subject.ErrSubjectNotFound):
		NotFound(w, "Subject not found")
	case errors.Is(err, subject.ErrCodeExists):
		Conflict(w, "Subject code already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrSessionNotFound):
		NotFound(w, "Attendance session not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Medical domain errors
	case errors.Is(err, medical.ErrRequestNotFound):
		NotFound(w, "Medical request not found")
	case errors.Is(err, medical.ErrInvalidAction):
		BadRequest(w, "Review action must be APPROVED or REJECTED", nil)
	case errors.Is(err, medical.ErrInvalidInterval):
		BadRequest(w, "Leave interval end is before start", nil)

	// Classroom domain errors
	case errors.Is(err, classroom.ErrClassroomNotFound):
		NotFound(w, "Classroom not found")
	case errors.Is(err, classroom.ErrInvalidJoinCode):
		NotFound(w, "Invalid join code")
	case errors.Is(err, classroom.ErrAlreadyMember):
		Conflict(w, "Already a member of this classroom")
	case errors.Is(err, classroom.ErrNotMember):
		Forbidden(w, "Not a member of this classroom")
	case errors.Is(err, classroom.ErrNotTeacher):
		Forbidden(w, "Only the classroom teacher may do this")
	case errors.Is(err, classroom.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, classroom.ErrDeadlinePassed):
		BadRequest(w, "Assignment deadline has passed", nil)
	case errors.Is(err, classroom.ErrTestNotFound):
		NotFound(w, "Test not found")
	case errors.Is(err, classroom.ErrTestNotOpen):
		BadRequest(w, "Test is not open", nil)
	case errors.Is(err, classroom.ErrAlreadySubmitted):
		Conflict(w, "Already submitted")
	case errors.Is(err, classroom.ErrAnswerCountMismatch):
		BadRequest(w, "Answer count does not match question count", nil)

	// Announcement domain errors
	case errors.Is(err, announcement.ErrGroupNotFound):
		NotFound(w, "Group not found")
	case errors.Is(err, announcement.ErrInvalidInviteLink):
		NotFound(w, "Invalid invite link")
	case errors.Is(err, announcement.ErrAlreadyMember):
		Conflict(w, "Already a member of this group")
	case errors.Is(err, announcement.ErrNotMember):
		Forbidden(w, "Not a member of this group")
	case errors.Is(err, announcement.ErrAdminRequired):
		Forbidden(w, "Group admin access required")
	case errors.Is(err, announcement.ErrAnnouncementNotFound):
		NotFound(w, "Announcement not found")
	case errors.Is(err, announcement.ErrNotAPoll):
		BadRequest(w, "Announcement is not a poll", nil)
	case errors.Is(err, announcement.ErrOptionNotFound):
		NotFound(w, "Poll option not found")
	case errors.Is(err, announcement.ErrOwnerCannotLeave):
		BadRequest(w, "Group owner cannot leave the group", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
