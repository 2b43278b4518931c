package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rosterhq/roster-backend-go/internal/domain/shift"
	"github.com/rosterhq/roster-backend-go/internal/handler/http/middleware"
	"github.com/rosterhq/roster-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	CreateTemplate(w http.ResponseWriter, r *http.Request)
	ListTemplates(w http.ResponseWriter, r *http.Request)
	GetTemplate(w http.ResponseWriter, r *http.Request)
	UpdateTemplate(w http.ResponseWriter, r *http.Request)
	DeleteTemplate(w http.ResponseWriter, r *http.Request)

	CreateShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	GetMyShifts(w http.ResponseWriter, r *http.Request)
	UpdateShift(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	templateRepo shift.ShiftTemplateRepository
	shiftRepo    shift.ScheduledShiftRepository
}

func NewShiftHandler(templateRepo shift.ShiftTemplateRepository, shiftRepo shift.ScheduledShiftRepository) ShiftHandler {
	return &ShiftHandlerImpl{
		templateRepo: templateRepo,
		shiftRepo:    shiftRepo,
	}
}

// CreateTemplate implements ShiftHandler.
func (h *ShiftHandlerImpl) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateTemplate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	policy := shift.BreakPolicy(req.BreakPolicy)
	if req.BreakPolicy == "" {
		policy = shift.BreakNone
	}

	created, err := h.templateRepo.Create(r.Context(), shift.ShiftTemplate{
		Name:        req.Name,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		BreakPolicy: policy,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift template created successfully", shift.ToTemplateResponse(created))
}

// ListTemplates implements ShiftHandler.
func (h *ShiftHandlerImpl) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templateRepo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]shift.TemplateResponse, 0, len(templates))
	for _, t := range templates {
		resp = append(resp, shift.ToTemplateResponse(t))
	}

	response.Success(w, resp)
}

// GetTemplate implements ShiftHandler.
func (h *ShiftHandlerImpl) GetTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Template ID is required", nil)
		return
	}

	tmpl, err := h.templateRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, shift.ToTemplateResponse(tmpl))
}

// UpdateTemplate implements ShiftHandler.
func (h *ShiftHandlerImpl) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Template ID is required", nil)
		return
	}

	var req shift.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateTemplate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tmpl := shift.ShiftTemplate{
		ID:          id,
		Name:        req.Name,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		BreakPolicy: shift.BreakPolicy(req.BreakPolicy),
	}
	if err := h.templateRepo.Update(r.Context(), tmpl); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift template updated successfully", shift.ToTemplateResponse(tmpl))
}

// DeleteTemplate implements ShiftHandler.
func (h *ShiftHandlerImpl) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Template ID is required", nil)
		return
	}

	if err := h.templateRepo.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift template deleted successfully", nil)
}

// CreateShift implements ShiftHandler.
func (h *ShiftHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateScheduledShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	alternative, err := req.CoverFields()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	shiftDate, _ := time.Parse("2006-01-02", req.ShiftDate)
	created, err := h.shiftRepo.Create(r.Context(), shift.ScheduledShift{
		ShiftDate:          shiftDate,
		StaffID:            req.StaffID,
		ShiftTemplateID:    req.ShiftTemplateID,
		CoverShift:         req.CoverShift,
		AlternativeStaffID: alternative,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created successfully", shift.ToScheduledShiftResponse(created))
}

// UpdateShift implements ShiftHandler. Replaces the full shift record;
// the main use is marking a rostered shift as covered.
func (h *ShiftHandlerImpl) UpdateShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	var req shift.CreateScheduledShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	alternative, err := req.CoverFields()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	existing, err := h.shiftRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	shiftDate, _ := time.Parse("2006-01-02", req.ShiftDate)
	updated := shift.ScheduledShift{
		ID:                 id,
		ShiftDate:          shiftDate,
		StaffID:            req.StaffID,
		ShiftTemplateID:    req.ShiftTemplateID,
		CoverShift:         req.CoverShift,
		AlternativeStaffID: alternative,
		HasPayslip:         existing.HasPayslip,
	}
	if err := h.shiftRepo.Update(r.Context(), updated); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift updated successfully", shift.ToScheduledShiftResponse(updated))
}

// ListShifts implements ShiftHandler. Expects from/to query params as
// YYYY-MM-DD; defaults to the current calendar month.
func (h *ShiftHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	shifts, err := h.shiftRepo.ListByDateRange(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]shift.ScheduledShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		resp = append(resp, shift.ToScheduledShiftResponse(s))
	}

	response.Success(w, resp)
}

// GetMyShifts implements ShiftHandler.
func (h *ShiftHandlerImpl) GetMyShifts(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	from, to, err := parseDateRange(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	shifts, err := h.shiftRepo.ListByEmployeeAndRange(r.Context(), actor.ID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]shift.ScheduledShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		resp = append(resp, shift.ToScheduledShiftResponse(s))
	}

	response.Success(w, resp)
}

// DeleteShift implements ShiftHandler.
func (h *ShiftHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	if err := h.shiftRepo.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}
