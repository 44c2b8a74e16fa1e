package leave

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

type Handler struct {
	leaveService *LeaveService
}

func NewHandler(leaveService *LeaveService) *Handler {
	return &Handler{leaveService: leaveService}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leaves", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleApply)
		r.Get("/{id}", h.handleGet)
		r.Post("/{id}/approve", h.handleApprove)
		r.Post("/{id}/reject", h.handleReject)
	})
}

type decisionPayload struct {
	Comment string `json:"comment"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	params := ListLeavesParams{
		Status: Status(r.URL.Query().Get("status")),
	}
	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, errorResponse{Error: "Invalid employee_id"})
			return
		}
		params.EmployeeID = id
	}

	leaves, err := h.leaveService.ListLeaves(r.Context(), params)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "Failed to list leave requests"})
		return
	}
	render.JSON(w, r, leaves)
}

func (h *Handler) handleApply(w http.ResponseWriter, r *http.Request) {
	var params ApplyLeaveParams
	if err := render.DecodeJSON(r.Body, &params); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid request body"})
		return
	}

	created, err := h.leaveService.ApplyLeave(r.Context(), params)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid leave id"})
		return
	}

	l, err := h.leaveService.GetLeave(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, l)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.handleDecision(w, r, h.leaveService.ApproveLeave)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	h.handleDecision(w, r, h.leaveService.RejectLeave)
}

func (h *Handler) handleDecision(w http.ResponseWriter, r *http.Request, decide func(context.Context, uuid.UUID, string) (LeaveRequest, error)) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid leave id"})
		return
	}

	var payload decisionPayload
	if err := render.DecodeJSON(r.Body, &payload); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid request body"})
		return
	}

	decided, err := decide(r.Context(), id, payload.Comment)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, decided)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrLeaveNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, errorResponse{Error: "Leave request not found"})
	case errors.Is(err, ErrInvalidLeaveType), errors.Is(err, ErrInvalidDateRange):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: err.Error()})
	case errors.Is(err, ErrAlreadyDecided):
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, errorResponse{Error: err.Error()})
	default:
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "Internal server error"})
	}
}
