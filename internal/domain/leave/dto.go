package leave

import (
	"github.com/rosterhq/roster-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateLeaveRequestRequest struct {
	LeaveType  string          `json:"leave_type"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	LeaveHours decimal.Decimal `json:"leave_hours"`
	Reason     string          `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave_type is required"})
	} else if !validator.IsOneOf(r.LeaveType, LeaveTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave_type is invalid"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date is required and must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date is required and must be YYYY-MM-DD"})
	}
	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date later than end_date"})
	}

	if !r.LeaveHours.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "leave_hours", Message: "leave_hours must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransitionLeaveRequestRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *TransitionLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "leave request id is required"})
	}
	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status is required"})
	} else if !validator.IsOneOf(r.Status, []string{
		string(LeaveRequestStatusApproved),
		string(LeaveRequestStatusRejected),
		string(LeaveRequestStatusCanceled),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of approved, rejected, canceled"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LeaveRequestResponse hides reviewer identity from non-staff viewers.
type LeaveRequestResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	LeaveType    string          `json:"leave_type"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	LeaveHours   decimal.Decimal `json:"leave_hours"`
	Reason       string          `json:"reason,omitempty"`
	Status       string          `json:"status"`
	RequestedAt  string          `json:"requested_at"`
	ReviewedAt   *string         `json:"reviewed_at,omitempty"`
	ReviewedBy   *string         `json:"reviewed_by,omitempty"`
	ReviewerName *string         `json:"reviewer_name,omitempty"`
}

func ToRequestResponse(req LeaveRequest, viewerIsStaff bool) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		LeaveType:    string(req.LeaveType),
		StartDate:    req.StartDate.Format("2006-01-02"),
		EndDate:      req.EndDate.Format("2006-01-02"),
		LeaveHours:   req.LeaveHours,
		Reason:       req.Reason,
		Status:       string(req.Status),
		RequestedAt:  req.RequestedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	if req.ReviewedAt != nil {
		s := req.ReviewedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.ReviewedAt = &s
	}
	if viewerIsStaff {
		resp.ReviewedBy = req.ReviewedBy
		resp.ReviewerName = req.ReviewerName
	}

	return resp
}

// BalanceSummary is the computed projection of available hours.
type BalanceSummary struct {
	EmployeeID      string          `json:"employee_id"`
	AvailableAnnual decimal.Decimal `json:"available_annual_hours"`
	AvailableSick   decimal.Decimal `json:"available_sick_hours"`
}
