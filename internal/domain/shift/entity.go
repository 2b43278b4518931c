package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftTemplate defines a reusable daily shift: a clock-time window plus a
// break policy. Scheduled shifts reference templates by ID.
type ShiftTemplate struct {
	ID          string
	Name        string
	StartTime   string // "15:04" clock time
	EndTime     string // "15:04" clock time
	BreakPolicy BreakPolicy
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type BreakPolicy string

const (
	BreakNone    BreakPolicy = "none"
	BreakShort   BreakPolicy = "short"   // 15 minutes
	BreakRegular BreakPolicy = "regular" // 30 minutes
)

var BreakPolicyValues = []string{
	string(BreakNone),
	string(BreakShort),
	string(BreakRegular),
}

// Minutes returns the break duration deducted from the shift window.
func (b BreakPolicy) Minutes() int {
	switch b {
	case BreakShort:
		return 15
	case BreakRegular:
		return 30
	default:
		return 0
	}
}

const clockLayout = "15:04"

// DailyWorkHours returns the paid hours of the shift: elapsed time minus
// the break, floored at zero. Malformed clock strings count as zero hours.
func (t ShiftTemplate) DailyWorkHours() decimal.Decimal {
	start, err := time.Parse(clockLayout, t.StartTime)
	if err != nil {
		return decimal.Zero
	}
	end, err := time.Parse(clockLayout, t.EndTime)
	if err != nil {
		return decimal.Zero
	}

	worked := end.Sub(start) - time.Duration(t.BreakPolicy.Minutes())*time.Minute
	if worked < 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(int64(worked / time.Minute)).Div(decimal.NewFromInt(60))
}

// Well-known template names the roster generator assigns by.
const (
	TemplateMorning        = "Morning Shift"
	TemplateMidday         = "Middle Shift"
	TemplateAfternoon      = "Afternoon Shift"
	TemplateWeekendMorning = "Weekend Morning"
	TemplateWeekendMidday  = "Weekend Midday"
	TemplateWeekendHelperA = "Weekend Helper A"
	TemplateWeekendHelperB = "Weekend Helper B"
)

// ScheduledShift assigns an employee to a shift template on a date. When
// CoverShift is set, AlternativeStaffID identifies who actually works and
// is paid for the shift.
type ScheduledShift struct {
	ID                 string
	ShiftDate          time.Time
	StaffID            string
	ShiftTemplateID    string
	CoverShift         bool
	AlternativeStaffID *string
	HasPayslip         bool
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Joined fields (for responses)
	StaffName            *string
	AlternativeStaffName *string
	TemplateName         *string
}

// EffectiveStaffID resolves who works the shift for pay purposes.
func (s ScheduledShift) EffectiveStaffID() string {
	if s.CoverShift && s.AlternativeStaffID != nil {
		return *s.AlternativeStaffID
	}
	return s.StaffID
}
