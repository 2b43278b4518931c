package response

import (
	"errors"
	"net/http"

	"github.com/rosterhq/roster-backend-go/internal/domain/employee"
	"github.com/rosterhq/roster-backend-go/internal/domain/leave"
	"github.com/rosterhq/roster-backend-go/internal/domain/shift"
	"github.com/rosterhq/roster-backend-go/internal/pkg/validator"
	serviceRoster "github.com/rosterhq/roster-backend-go/internal/service/roster"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrProtectedAccount):
		Forbidden(w, "This account cannot be deactivated")
	case errors.Is(err, employee.ErrSelfDeactivation):
		Forbidden(w, "Staff cannot deactivate their own account")
	case errors.Is(err, employee.ErrAccessDenied):
		Forbidden(w, "Access denied")

	// Shift domain errors
	case errors.Is(err, shift.ErrTemplateNotFound):
		NotFound(w, "Shift template not found")
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrCoverStaffRequired):
		BadRequest(w, "Cover shifts require an alternative staff member", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrDuplicateRequest):
		Conflict(w, "An identical leave request is already pending or approved")
	case errors.Is(err, leave.ErrInvalidTransition):
		Conflict(w, "Leave request cannot move to the requested status")
	case errors.Is(err, leave.ErrSelfReview):
		Forbidden(w, "Reviewers cannot approve or reject their own requests")
	case errors.Is(err, leave.ErrReviewForbidden):
		Forbidden(w, "Only staff can review leave requests")
	case errors.Is(err, leave.ErrCancelForbidden):
		Forbidden(w, "Only the requester or staff can cancel this request")

	// Roster generation errors
	case errors.Is(err, serviceRoster.ErrRosterExists):
		Conflict(w, "A roster already exists for this month")
	case errors.Is(err, serviceRoster.ErrNoManager):
		BadRequest(w, "Roster manager account not found", nil)
	case errors.Is(err, serviceRoster.ErrNoFullTimeStaff):
		BadRequest(w, "No full-time staff available for the midday shift", nil)
	case errors.Is(err, serviceRoster.ErrTemplatesMissing):
		BadRequest(w, "One or more shift templates are missing", nil)
	case errors.Is(err, serviceRoster.ErrInvalidYearMonth):
		BadRequest(w, "Invalid year or month", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
