package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rosterhq/roster-backend-go/internal/domain/leave"
	"github.com/rosterhq/roster-backend-go/internal/handler/http/middleware"
	"github.com/rosterhq/roster-backend-go/internal/handler/http/response"
	serviceLeave "github.com/rosterhq/roster-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	TransitionRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	requestService *serviceLeave.RequestService
	requestRepo    leave.LeaveRequestRepository
}

func NewLeaveHandler(requestService *serviceLeave.RequestService, requestRepo leave.LeaveRequestRepository) LeaveHandler {
	return &LeaveHandlerImpl{
		requestService: requestService,
		requestRepo:    requestRepo,
	}
}

// CreateRequest implements LeaveHandler. The request is always filed for
// the acting employee.
func (h *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	created, err := h.requestService.Create(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", leave.ToRequestResponse(created, actor.IsStaff))
}

// ListRequests implements LeaveHandler. Staff only; supports an optional
// status query filter.
func (h *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFromContext(r.Context())

	var status *leave.LeaveRequestStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := leave.LeaveRequestStatus(s)
		status = &st
	}

	requests, err := h.requestRepo.List(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		resp = append(resp, leave.ToRequestResponse(req, actor.IsStaff))
	}

	response.Success(w, resp)
}

// GetMyRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requests, err := h.requestRepo.ListByEmployee(r.Context(), actor.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		resp = append(resp, leave.ToRequestResponse(req, actor.IsStaff))
	}

	response.Success(w, resp)
}

// GetRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	actor, _ := middleware.ActorFromContext(r.Context())

	req, err := h.requestRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !actor.IsStaff && req.EmployeeID != actor.ID {
		response.Forbidden(w, "Access denied")
		return
	}

	response.Success(w, leave.ToRequestResponse(req, actor.IsStaff))
}

// TransitionRequest implements LeaveHandler. Drives the pending/approved/
// rejected/canceled state machine; role checks live in the service.
func (h *LeaveHandlerImpl) TransitionRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	var req leave.TransitionLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("TransitionRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	updated, err := h.requestService.Transition(r.Context(), req.ID, leave.LeaveRequestStatus(req.Status), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request updated successfully", leave.ToRequestResponse(updated, actor.IsStaff))
}
