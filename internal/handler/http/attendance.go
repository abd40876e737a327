package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/attendance"
	"github.com/gymdesk/gymdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	Mark(w http.ResponseWriter, r *http.Request)
	RecordLeave(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
	ListByStaff(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	MonthlyReport(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	settingsService   attendance.SettingsService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, settingsService attendance.SettingsService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
		settingsService:   settingsService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Check-in decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		slog.Error("Check-in service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check-in recorded successfully", record)
}

// Mark implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Mark attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.attendanceService.Mark(r.Context(), req)
	if err != nil {
		slog.Error("Mark attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked successfully", record)
}

// RecordLeave implements AttendanceHandler.
func (h *AttendanceHandlerImpl) RecordLeave(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Record leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	records, err := h.attendanceService.RecordLeave(r.Context(), req)
	if err != nil {
		slog.Error("Record leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave recorded successfully", records)
}

// ListByDate implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	records, err := h.attendanceService.ListByDate(r.Context(), date)
	if err != nil {
		slog.Error("List attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// ListByStaff implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListByStaff(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")

	now := time.Now().UTC()
	from := r.URL.Query().Get("from")
	if from == "" {
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	}
	to := r.URL.Query().Get("to")
	if to == "" {
		to = now.Format("2006-01-02")
	}

	records, err := h.attendanceService.ListByStaff(r.Context(), staffID, from, to)
	if err != nil {
		slog.Error("List staff attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Delete implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffID")
	date := chi.URLParam(r, "date")

	if err := h.attendanceService.Delete(r.Context(), staffID, date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted successfully", nil)
}

// MonthlyReport implements AttendanceHandler.
func (h *AttendanceHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	month := int(now.Month())
	year := now.Year()

	if m := r.URL.Query().Get("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 1 || parsed > 12 {
			response.BadRequest(w, "month must be between 1 and 12", nil)
			return
		}
		month = parsed
	}
	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = parsed
	}

	if staffID := r.URL.Query().Get("staff_id"); staffID != "" {
		summary, err := h.attendanceService.MonthlyReport(r.Context(), staffID, month, year)
		if err != nil {
			slog.Error("Monthly report service error", "error", err)
			response.HandleError(w, err)
			return
		}
		response.Success(w, summary)
		return
	}

	summaries, err := h.attendanceService.MonthlyReportAll(r.Context(), month, year)
	if err != nil {
		slog.Error("Monthly report service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, summaries)
}

// GetSettings implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, settings)
}

// UpdateSettings implements AttendanceHandler.
func (h *AttendanceHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update settings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	settings, err := h.settingsService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update settings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance settings updated successfully", settings)
}
