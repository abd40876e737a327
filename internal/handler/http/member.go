package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gymdesk/gymdesk-backend-go/internal/domain/member"
	"github.com/gymdesk/gymdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type MemberHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type MemberHandlerImpl struct {
	memberService member.MemberService
}

func NewMemberHandler(memberService member.MemberService) MemberHandler {
	return &MemberHandlerImpl{memberService: memberService}
}

// Create implements MemberHandler.
func (h *MemberHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req member.CreateMemberRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create member decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.memberService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create member service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Member created successfully", created)
}

// GetByID implements MemberHandler.
func (h *MemberHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.memberService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements MemberHandler.
func (h *MemberHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req member.UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update member decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.memberService.Update(r.Context(), id, req)
	if err != nil {
		slog.Error("Update member service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Member updated successfully", updated)
}

// Delete implements MemberHandler.
func (h *MemberHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.memberService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Member deleted successfully", nil)
}

// List implements MemberHandler.
func (h *MemberHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := member.MemberFilter{
		SubscriptionType: r.URL.Query().Get("subscription_type"),
		PaymentStatus:    r.URL.Query().Get("payment_status"),
		Search:           r.URL.Query().Get("search"),
		Page:             1,
		Limit:            20,
	}
	if m := r.URL.Query().Get("renewal_month"); m != "" {
		if parsed, err := strconv.Atoi(m); err == nil {
			filter.RenewalMonth = parsed
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

	members, total, err := h.memberService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List members service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, members, response.NewMeta(filter.Page, filter.Limit, total))
}
