package employee

import (
	"github.com/rosterhq/roster-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	Gender    string `json:"gender"`
	Address   string `json:"address"`
	Suburb    string `json:"suburb"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	TFN       string `json:"tfn"`

	PositionType      string           `json:"position_type"`
	PermanentPosition bool             `json:"permanent_position"`
	PartTimeRate      *decimal.Decimal `json:"part_time_rate,omitempty"`
	PayRate           decimal.Decimal  `json:"pay_rate"`
	StartDate         string           `json:"start_date"`

	IsStaff bool `json:"is_staff"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is invalid"})
	}
	if r.PositionType != "" && !validator.IsOneOf(r.PositionType, PositionTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "position_type", Message: "position_type must be one of full, part, casual, admin"})
	}
	if r.StartDate != "" {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
		}
	}
	if r.PayRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "pay_rate", Message: "pay_rate must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                string           `json:"-"`
	FirstName         *string          `json:"first_name,omitempty"`
	LastName          *string          `json:"last_name,omitempty"`
	Mobile            *string          `json:"mobile,omitempty"`
	Address           *string          `json:"address,omitempty"`
	Suburb            *string          `json:"suburb,omitempty"`
	State             *string          `json:"state,omitempty"`
	Postcode          *string          `json:"postcode,omitempty"`
	PositionType      *string          `json:"position_type,omitempty"`
	PermanentPosition *bool            `json:"permanent_position,omitempty"`
	PartTimeRate      *decimal.Decimal `json:"part_time_rate,omitempty"`
	PayRate           *decimal.Decimal `json:"pay_rate,omitempty"`
	StartDate         *string          `json:"start_date,omitempty"`
	EndDate           *string          `json:"end_date,omitempty"`
	IsActive          *bool            `json:"is_active,omitempty"`
	IsStaff           *bool            `json:"is_staff,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "employee id is required"})
	}
	if r.PositionType != nil && !validator.IsOneOf(*r.PositionType, PositionTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "position_type", Message: "position_type must be one of full, part, casual, admin"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
		}
	}
	if r.EndDate != nil && *r.EndDate != "" {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeResponse is the projection served to managers and to employees
// viewing their own record.
type EmployeeResponse struct {
	ID                string           `json:"id"`
	FirstName         string           `json:"first_name"`
	LastName          string           `json:"last_name"`
	Email             string           `json:"email"`
	Mobile            string           `json:"mobile"`
	PositionType      string           `json:"position_type"`
	PermanentPosition bool             `json:"permanent_position"`
	PartTimeRate      *decimal.Decimal `json:"part_time_rate,omitempty"`
	PayRate           decimal.Decimal  `json:"pay_rate"`
	StartDate         *string          `json:"start_date,omitempty"`
	EndDate           *string          `json:"end_date,omitempty"`
	IsActive          bool             `json:"is_active"`
	IsStaff           bool             `json:"is_staff"`
	IsSuperuser       bool             `json:"is_superuser"`
}

// ToResponse builds the projection for a given viewer. The part-time rate
// is only exposed to staff, or to a part-timer viewing their own record.
func ToResponse(emp Employee, viewer Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                emp.ID,
		FirstName:         emp.FirstName,
		LastName:          emp.LastName,
		Email:             emp.Email,
		Mobile:            emp.Mobile,
		PositionType:      string(emp.PositionType),
		PermanentPosition: emp.PermanentPosition,
		PayRate:           emp.PayRate,
		IsActive:          emp.IsActive,
		IsStaff:           emp.IsStaff,
		IsSuperuser:       emp.IsSuperuser,
	}

	if emp.StartDate != nil {
		s := emp.StartDate.Format("2006-01-02")
		resp.StartDate = &s
	}
	if emp.EndDate != nil {
		s := emp.EndDate.Format("2006-01-02")
		resp.EndDate = &s
	}

	selfPartTimer := viewer.ID == emp.ID && emp.PositionType == PositionPartTime
	if viewer.IsStaff || selfPartTimer {
		rate := emp.PartTimeRate
		resp.PartTimeRate = &rate
	}

	return resp
}
