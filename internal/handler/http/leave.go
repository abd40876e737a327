package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/leave"
	"github.com/gymdesk/gymdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveBalanceHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	SetAllocation(w http.ResponseWriter, r *http.Request)
}

type LeaveBalanceHandlerImpl struct {
	balanceService leave.BalanceService
}

func NewLeaveBalanceHandler(balanceService leave.BalanceService) LeaveBalanceHandler {
	return &LeaveBalanceHandlerImpl{balanceService: balanceService}
}

// Get implements LeaveBalanceHandler.
func (h *LeaveBalanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	year := time.Now().UTC().Year()
	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = parsed
	}

	balance, err := h.balanceService.Get(r.Context(), staffID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}

// SetAllocation implements LeaveBalanceHandler.
func (h *LeaveBalanceHandlerImpl) SetAllocation(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	var req leave.SetAllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Set leave allocation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	balance, err := h.balanceService.SetAllocation(r.Context(), staffID, req)
	if err != nil {
		slog.Error("Set leave allocation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave allocation updated successfully", balance)
}
