package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rosterhq/roster-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduledShiftRepo struct {
	shifts map[string]shift.ScheduledShift
	seq    int
}

func newFakeScheduledShiftRepo(shifts ...shift.ScheduledShift) *fakeScheduledShiftRepo {
	r := &fakeScheduledShiftRepo{shifts: make(map[string]shift.ScheduledShift)}
	for _, s := range shifts {
		r.shifts[s.ID] = s
	}
	return r
}

func (r *fakeScheduledShiftRepo) Create(ctx context.Context, s shift.ScheduledShift) (shift.ScheduledShift, error) {
	if s.ID == "" {
		r.seq++
		s.ID = fmt.Sprintf("shift-%d", r.seq)
	}
	r.shifts[s.ID] = s
	return s, nil
}

func (r *fakeScheduledShiftRepo) BulkCreate(ctx context.Context, shifts []shift.ScheduledShift) error {
	for _, s := range shifts {
		if _, err := r.Create(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeScheduledShiftRepo) GetByID(ctx context.Context, id string) (shift.ScheduledShift, error) {
	s, ok := r.shifts[id]
	if !ok {
		return shift.ScheduledShift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (r *fakeScheduledShiftRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]shift.ScheduledShift, error) {
	return nil, nil
}

func (r *fakeScheduledShiftRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]shift.ScheduledShift, error) {
	return nil, nil
}

func (r *fakeScheduledShiftRepo) ListUnpaidByDate(ctx context.Context, date time.Time) ([]shift.ScheduledShift, error) {
	return nil, nil
}

func (r *fakeScheduledShiftRepo) ExistsInRange(ctx context.Context, from, to time.Time) (bool, error) {
	return len(r.shifts) > 0, nil
}

func (r *fakeScheduledShiftRepo) Update(ctx context.Context, s shift.ScheduledShift) error {
	if _, ok := r.shifts[s.ID]; !ok {
		return shift.ErrShiftNotFound
	}
	r.shifts[s.ID] = s
	return nil
}

func (r *fakeScheduledShiftRepo) MarkPaid(ctx context.Context, ids []string) error {
	for _, id := range ids {
		s := r.shifts[id]
		s.HasPayslip = true
		r.shifts[id] = s
	}
	return nil
}

func (r *fakeScheduledShiftRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.shifts[id]; !ok {
		return shift.ErrShiftNotFound
	}
	delete(r.shifts, id)
	return nil
}

func newShiftTestRouter(shiftRepo shift.ScheduledShiftRepository) chi.Router {
	h := NewShiftHandler(nil, shiftRepo)
	r := chi.NewRouter()
	r.Post("/scheduled-shifts", h.CreateShift)
	r.Put("/scheduled-shifts/{id}", h.UpdateShift)
	return r
}

func putShift(t *testing.T, router chi.Router, id string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/scheduled-shifts/"+id, bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUpdateShiftMarksCover(t *testing.T) {
	repo := newFakeScheduledShiftRepo(shift.ScheduledShift{
		ID:              "shift-1",
		ShiftDate:       time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StaffID:         "emp-1",
		ShiftTemplateID: "tpl-1",
		HasPayslip:      true,
	})
	router := newShiftTestRouter(repo)

	rec := putShift(t, router, "shift-1", map[string]interface{}{
		"shift_date":           "2026-09-07",
		"staff_id":             "emp-1",
		"shift_template_id":    "tpl-1",
		"cover_shift":          true,
		"alternative_staff_id": "emp-9",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	stored, err := repo.GetByID(context.Background(), "shift-1")
	require.NoError(t, err)
	assert.True(t, stored.CoverShift)
	require.NotNil(t, stored.AlternativeStaffID)
	assert.Equal(t, "emp-9", *stored.AlternativeStaffID)
	assert.True(t, stored.HasPayslip, "payment flag must survive the update")
}

func TestUpdateShiftRequiresAlternativeForCover(t *testing.T) {
	repo := newFakeScheduledShiftRepo(shift.ScheduledShift{
		ID:              "shift-1",
		ShiftDate:       time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StaffID:         "emp-1",
		ShiftTemplateID: "tpl-1",
	})
	router := newShiftTestRouter(repo)

	rec := putShift(t, router, "shift-1", map[string]interface{}{
		"shift_date":        "2026-09-07",
		"staff_id":          "emp-1",
		"shift_template_id": "tpl-1",
		"cover_shift":       true,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	stored, err := repo.GetByID(context.Background(), "shift-1")
	require.NoError(t, err)
	assert.False(t, stored.CoverShift, "rejected update must leave the shift untouched")
}

func TestUpdateShiftUnknownID(t *testing.T) {
	router := newShiftTestRouter(newFakeScheduledShiftRepo())

	rec := putShift(t, router, "missing", map[string]interface{}{
		"shift_date":        "2026-09-07",
		"staff_id":          "emp-1",
		"shift_template_id": "tpl-1",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateShiftRequiresAlternativeForCover(t *testing.T) {
	repo := newFakeScheduledShiftRepo()
	router := newShiftTestRouter(repo)

	payload, err := json.Marshal(map[string]interface{}{
		"shift_date":        "2026-09-07",
		"staff_id":          "emp-1",
		"shift_template_id": "tpl-1",
		"cover_shift":       true,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/scheduled-shifts", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.shifts)
}
