package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Mobile    string
	Gender    string
	Address   string
	Suburb    string
	State     string
	Postcode  string
	TFN       string

	PositionType      PositionType
	PermanentPosition bool
	PartTimeRate      decimal.Decimal // multiplier applied to accrual for part-timers
	PayRate           decimal.Decimal // hourly rate

	StartDate *time.Time
	EndDate   *time.Time

	IsActive    bool
	IsStaff     bool
	IsSuperuser bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PositionType string

const (
	PositionFullTime PositionType = "full"
	PositionPartTime PositionType = "part"
	PositionCasual   PositionType = "casual"
	PositionAdmin    PositionType = "admin"
)

var PositionTypeValues = []string{
	string(PositionFullTime),
	string(PositionPartTime),
	string(PositionCasual),
	string(PositionAdmin),
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// AccruesLeave reports whether the employee is eligible for leave accrual:
// a permanent position with an employment start date and no end date.
func (e Employee) AccruesLeave() bool {
	return e.PermanentPosition && e.StartDate != nil && e.EndDate == nil
}

// HoldsBalance reports whether the employee's position carries a leave
// balance record. Casual and admin staff have none.
func (e Employee) HoldsBalance() bool {
	return e.PositionType == PositionFullTime || e.PositionType == PositionPartTime
}
