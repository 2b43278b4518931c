package shift

import (
	"github.com/rosterhq/roster-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateTemplateRequest struct {
	Name        string `json:"name"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	BreakPolicy string `json:"break_policy"`
}

func (r *CreateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be HH:MM"})
	}
	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be HH:MM"})
	}
	if r.BreakPolicy != "" && !validator.IsOneOf(r.BreakPolicy, BreakPolicyValues) {
		errs = append(errs, validator.ValidationError{Field: "break_policy", Message: "break_policy must be one of none, short, regular"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TemplateResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	StartTime      string          `json:"start_time"`
	EndTime        string          `json:"end_time"`
	BreakPolicy    string          `json:"break_policy"`
	DailyWorkHours decimal.Decimal `json:"daily_work_hours"`
}

func ToTemplateResponse(t ShiftTemplate) TemplateResponse {
	return TemplateResponse{
		ID:             t.ID,
		Name:           t.Name,
		StartTime:      t.StartTime,
		EndTime:        t.EndTime,
		BreakPolicy:    string(t.BreakPolicy),
		DailyWorkHours: t.DailyWorkHours().Round(2),
	}
}

type CreateScheduledShiftRequest struct {
	ShiftDate          string  `json:"shift_date"`
	StaffID            string  `json:"staff_id"`
	ShiftTemplateID    string  `json:"shift_template_id"`
	CoverShift         bool    `json:"cover_shift"`
	AlternativeStaffID *string `json:"alternative_staff_id,omitempty"`
}

func (r *CreateScheduledShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.ShiftDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "shift_date", Message: "shift_date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "staff_id is required"})
	}
	if validator.IsEmpty(r.ShiftTemplateID) {
		errs = append(errs, validator.ValidationError{Field: "shift_template_id", Message: "shift_template_id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CoverFields enforces the cover pairing: a cover shift takes an
// alternative staff member, a regular shift carries none.
func (r *CreateScheduledShiftRequest) CoverFields() (*string, error) {
	if !r.CoverShift {
		return nil, nil
	}
	if r.AlternativeStaffID == nil || validator.IsEmpty(*r.AlternativeStaffID) {
		return nil, ErrCoverStaffRequired
	}
	return r.AlternativeStaffID, nil
}

// ScheduledShiftResponse hides the cover fields unless the shift is covered.
type ScheduledShiftResponse struct {
	ID                   string  `json:"id"`
	ShiftDate            string  `json:"shift_date"`
	StaffID              string  `json:"staff_id"`
	StaffName            *string `json:"staff_name,omitempty"`
	ShiftTemplateID      string  `json:"shift_template_id"`
	TemplateName         *string `json:"template_name,omitempty"`
	CoverShift           *bool   `json:"cover_shift,omitempty"`
	AlternativeStaffID   *string `json:"alternative_staff_id,omitempty"`
	AlternativeStaffName *string `json:"alternative_staff_name,omitempty"`
	HasPayslip           bool    `json:"has_payslip"`
}

func ToScheduledShiftResponse(s ScheduledShift) ScheduledShiftResponse {
	resp := ScheduledShiftResponse{
		ID:              s.ID,
		ShiftDate:       s.ShiftDate.Format("2006-01-02"),
		StaffID:         s.StaffID,
		StaffName:       s.StaffName,
		ShiftTemplateID: s.ShiftTemplateID,
		TemplateName:    s.TemplateName,
		HasPayslip:      s.HasPayslip,
	}

	if s.CoverShift {
		cover := true
		resp.CoverShift = &cover
		resp.AlternativeStaffID = s.AlternativeStaffID
		resp.AlternativeStaffName = s.AlternativeStaffName
	}

	return resp
}
