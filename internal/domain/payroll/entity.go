package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// WageRecord - one computed pay line per worked shift. Created exactly once
// per shift by the daily payroll run and never updated afterwards.
type WageRecord struct {
	ID         string
	EmployeeID string
	ShiftID    string
	PayDate    time.Time
	Salary     decimal.Decimal
	CreatedAt  time.Time

	// Joined fields (for responses)
	EmployeeName *string
	TemplateName *string
}

// CasualLoading is the pay-rate multiplier applied to casual employees in
// lieu of permanent-employee benefits.
var CasualLoading = decimal.RequireFromString("1.25")
