package payroll

import "github.com/shopspring/decimal"

type WageRecordResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	ShiftID      string          `json:"shift_id"`
	TemplateName *string         `json:"template_name,omitempty"`
	PayDate      string          `json:"pay_date"`
	Salary       decimal.Decimal `json:"salary"`
}

func ToWageResponse(w WageRecord) WageRecordResponse {
	return WageRecordResponse{
		ID:           w.ID,
		EmployeeID:   w.EmployeeID,
		EmployeeName: w.EmployeeName,
		ShiftID:      w.ShiftID,
		TemplateName: w.TemplateName,
		PayDate:      w.PayDate.Format("2006-01-02"),
		Salary:       w.Salary,
	}
}

type RunPayrollRequest struct {
	Date string `json:"date"`
}

type RunPayrollResponse struct {
	Date         string `json:"date"`
	WagesCreated int    `json:"wages_created"`
}
