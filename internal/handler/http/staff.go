package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/staff"
	"github.com/gymdesk/gymdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type StaffHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type StaffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &StaffHandlerImpl{staffService: staffService}
}

// Create implements StaffHandler.
func (h *StaffHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req staff.CreateStaffRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create staff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.staffService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create staff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Staff member created successfully", created)
}

// GetByID implements StaffHandler.
func (h *StaffHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.staffService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements StaffHandler.
func (h *StaffHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req staff.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update staff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.staffService.Update(r.Context(), id, req)
	if err != nil {
		slog.Error("Update staff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff member updated successfully", updated)
}

// Delete implements StaffHandler.
func (h *StaffHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.staffService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Staff member deleted successfully", nil)
}

// List implements StaffHandler.
func (h *StaffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := staff.StaffFilter{
		Search: r.URL.Query().Get("search"),
		Page:   1,
		Limit:  20,
	}
	if active := r.URL.Query().Get("is_active"); active != "" {
		if parsed, err := strconv.ParseBool(active); err == nil {
			filter.IsActive = &parsed
		}
	}
	if p := r.URL.Query().Get("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil {
			filter.Page = parsed
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil {
			filter.Limit = parsed
		}
	}

	staffMembers, total, err := h.staffService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List staff service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, staffMembers, response.NewMeta(filter.Page, filter.Limit, total))
}
