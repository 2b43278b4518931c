package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/rosterhq/roster-backend-go/internal/domain/employee"
	"github.com/rosterhq/roster-backend-go/internal/domain/shift"
)

var (
	ErrRosterExists     = errors.New("Roster already generated for this month")
	ErrNoManager        = errors.New("No manager configured for the roster")
	ErrNoFullTimeStaff  = errors.New("No full-time staff available for the roster")
	ErrTemplatesMissing = errors.New("Roster shift templates are not configured")
	ErrInvalidYearMonth = errors.New("Invalid roster year or month")
)

// maxShiftsPerWeek caps how many shifts one casual may pick up within a
// single week bucket.
const maxShiftsPerWeek = 4

// Service generates a month of scheduled shifts: fixed weekday assignments
// for the manager and the designated full-timer, randomized assignment of
// casuals to evening and weekend slots. All randomness flows through the
// injected source so a seeded run is reproducible.
type Service struct {
	employeeRepo employee.EmployeeRepository
	templateRepo shift.ShiftTemplateRepository
	shiftRepo    shift.ScheduledShiftRepository
	managerEmail string
	rng          *rand.Rand
}

func NewService(
	employeeRepo employee.EmployeeRepository,
	templateRepo shift.ShiftTemplateRepository,
	shiftRepo shift.ScheduledShiftRepository,
	managerEmail string,
	rng *rand.Rand,
) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		templateRepo: templateRepo,
		shiftRepo:    shiftRepo,
		managerEmail: managerEmail,
		rng:          rng,
	}
}

// rosterTemplates holds the resolved shift templates the generator assigns.
type rosterTemplates struct {
	morning        shift.ShiftTemplate
	midday         shift.ShiftTemplate
	afternoon      shift.ShiftTemplate
	weekendMorning shift.ShiftTemplate
	weekendMidday  shift.ShiftTemplate
	helpers        []shift.ShiftTemplate
}

// Generate builds and persists the roster for a month. Re-running for a
// month that already has scheduled shifts fails with ErrRosterExists.
func (s *Service) Generate(ctx context.Context, year int, month time.Month) ([]shift.ScheduledShift, error) {
	if year < 2000 || month < time.January || month > time.December {
		return nil, ErrInvalidYearMonth
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	exists, err := s.shiftRepo.ExistsInRange(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing roster: %w", err)
	}
	if exists {
		return nil, ErrRosterExists
	}

	manager, err := s.employeeRepo.GetByEmail(ctx, s.managerEmail)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, ErrNoManager
		}
		return nil, fmt.Errorf("failed to resolve manager: %w", err)
	}

	fullTimers, err := s.employeeRepo.ListByPositionType(ctx, employee.PositionFullTime, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list full-time staff: %w", err)
	}
	var fullTimer *employee.Employee
	for i := range fullTimers {
		if fullTimers[i].ID != manager.ID {
			fullTimer = &fullTimers[i]
			break
		}
	}
	if fullTimer == nil {
		return nil, ErrNoFullTimeStaff
	}

	casuals, err := s.employeeRepo.ListByPositionType(ctx, employee.PositionCasual, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list casual staff: %w", err)
	}

	templates, err := s.loadTemplates(ctx)
	if err != nil {
		return nil, err
	}

	weeks := monthWeeks(year, month)

	shifts := s.fixedWeekdayShifts(weeks, manager, *fullTimer, templates)
	shifts = append(shifts, s.casualShifts(weeks, casuals, templates)...)

	if err := s.shiftRepo.BulkCreate(ctx, shifts); err != nil {
		return nil, fmt.Errorf("failed to persist roster: %w", err)
	}

	slog.Info("Roster generated",
		"year", year, "month", int(month),
		"weeks", len(weeks), "shifts", len(shifts), "casuals", len(casuals))

	return shifts, nil
}

func (s *Service) loadTemplates(ctx context.Context) (rosterTemplates, error) {
	var t rosterTemplates
	var err error

	load := func(name string) shift.ShiftTemplate {
		if err != nil {
			return shift.ShiftTemplate{}
		}
		var tmpl shift.ShiftTemplate
		tmpl, err = s.templateRepo.GetByName(ctx, name)
		return tmpl
	}

	t.morning = load(shift.TemplateMorning)
	t.midday = load(shift.TemplateMidday)
	t.afternoon = load(shift.TemplateAfternoon)
	t.weekendMorning = load(shift.TemplateWeekendMorning)
	t.weekendMidday = load(shift.TemplateWeekendMidday)
	helperA := load(shift.TemplateWeekendHelperA)
	helperB := load(shift.TemplateWeekendHelperB)
	if err != nil {
		if errors.Is(err, shift.ErrTemplateNotFound) {
			return rosterTemplates{}, ErrTemplatesMissing
		}
		return rosterTemplates{}, fmt.Errorf("failed to load roster templates: %w", err)
	}

	t.helpers = []shift.ShiftTemplate{helperA, helperB}
	return t, nil
}

// fixedWeekdayShifts books the manager onto every weekday morning and the
// designated full-timer onto every weekday midday.
func (s *Service) fixedWeekdayShifts(weeks []weekBucket, manager, fullTimer employee.Employee, t rosterTemplates) []shift.ScheduledShift {
	shifts := make([]shift.ScheduledShift, 0)
	for _, week := range weeks {
		for _, day := range week.Weekdays {
			shifts = append(shifts,
				shift.ScheduledShift{ShiftDate: day, StaffID: manager.ID, ShiftTemplateID: t.morning.ID},
				shift.ScheduledShift{ShiftDate: day, StaffID: fullTimer.ID, ShiftTemplateID: t.midday.ID},
			)
		}
	}
	return shifts
}

// casualShifts distributes casual staff across the month: one random
// evening shift per weekday, up to three weekend roles on Saturdays and two
// on Sundays, each under the per-bucket cap.
func (s *Service) casualShifts(weeks []weekBucket, casuals []employee.Employee, t rosterTemplates) []shift.ScheduledShift {
	shifts := make([]shift.ScheduledShift, 0)

	for _, week := range weeks {
		counts := make(map[string]int, len(casuals))
		booked := make(map[string]map[string]bool) // day -> staff id -> booked

		book := func(day time.Time, staffID, templateID string) {
			shifts = append(shifts, shift.ScheduledShift{
				ShiftDate:       day,
				StaffID:         staffID,
				ShiftTemplateID: templateID,
			})
			counts[staffID]++
			key := day.Format("2006-01-02")
			if booked[key] == nil {
				booked[key] = make(map[string]bool)
			}
			booked[key][staffID] = true
		}

		available := func(day time.Time) []employee.Employee {
			key := day.Format("2006-01-02")
			out := make([]employee.Employee, 0, len(casuals))
			for _, c := range casuals {
				if counts[c.ID] < maxShiftsPerWeek && !booked[key][c.ID] {
					out = append(out, c)
				}
			}
			return out
		}

		for _, day := range week.Weekdays {
			candidates := available(day)
			if len(candidates) == 0 {
				continue
			}
			pick := candidates[s.rng.Intn(len(candidates))]
			book(day, pick.ID, t.afternoon.ID)
		}

		for _, day := range week.Saturdays {
			candidates := available(day)
			s.shuffle(candidates)
			helper := t.helpers[s.rng.Intn(len(t.helpers))]
			roles := []string{t.weekendMorning.ID, t.weekendMidday.ID, helper.ID}
			for i, c := range candidates {
				if i >= len(roles) {
					break
				}
				book(day, c.ID, roles[i])
			}
		}

		for _, day := range week.Sundays {
			candidates := available(day)
			s.shuffle(candidates)
			roles := []string{t.weekendMorning.ID, t.weekendMidday.ID}
			for i, c := range candidates {
				if i >= len(roles) {
					break
				}
				book(day, c.ID, roles[i])
			}
		}
	}

	return shifts
}

func (s *Service) shuffle(employees []employee.Employee) {
	s.rng.Shuffle(len(employees), func(i, j int) {
		employees[i], employees[j] = employees[j], employees[i]
	})
}
