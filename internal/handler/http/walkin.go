package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/walkin"
	"github.com/gymdesk/gymdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WalkInHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	FollowUpsDue(w http.ResponseWriter, r *http.Request)
}

type WalkInHandlerImpl struct {
	walkInService walkin.WalkInService
}

func NewWalkInHandler(walkInService walkin.WalkInService) WalkInHandler {
	return &WalkInHandlerImpl{walkInService: walkInService}
}

// Create implements WalkInHandler.
func (h *WalkInHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req walkin.CreateWalkInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create walk-in decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.walkInService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create walk-in service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Walk-in recorded successfully", created)
}

// GetByID implements WalkInHandler.
func (h *WalkInHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.walkInService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements WalkInHandler.
func (h *WalkInHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req walkin.UpdateWalkInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update walk-in decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.walkInService.Update(r.Context(), id, req)
	if err != nil {
		slog.Error("Update walk-in service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Walk-in updated successfully", updated)
}

// UpdateStatus implements WalkInHandler.
func (h *WalkInHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req walkin.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update walk-in status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.walkInService.UpdateStatus(r.Context(), id, req)
	if err != nil {
		slog.Error("Update walk-in status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Walk-in status updated successfully", updated)
}

// Delete implements WalkInHandler.
func (h *WalkInHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.walkInService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Walk-in deleted successfully", nil)
}

// List implements WalkInHandler.
func (h *WalkInHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := walkin.WalkInFilter{
		Status:   r.URL.Query().Get("status"),
		Search:   r.URL.Query().Get("search"),
		DateFrom: r.URL.Query().Get("date_from"),
		DateTo:   r.URL.Query().Get("date_to"),
		Page:     1,
		Limit:    20,
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

	walkIns, total, err := h.walkInService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List walk-ins service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, walkIns, response.NewMeta(filter.Page, filter.Limit, total))
}

// FollowUpsDue implements WalkInHandler.
func (h *WalkInHandlerImpl) FollowUpsDue(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	walkIns, err := h.walkInService.FollowUpsDue(r.Context(), date)
	if err != nil {
		slog.Error("List due follow-ups service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, walkIns)
}
