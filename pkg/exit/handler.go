package exit

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

type Handler struct {
	exitService *ExitService
}

func NewHandler(exitService *ExitService) *Handler {
	return &Handler{exitService: exitService}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/resignations", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleApply)
		r.Get("/{id}", h.handleGet)
		r.Post("/{id}/approve", h.handleApprove)
		r.Post("/{id}/reject", h.handleReject)
		r.Put("/{id}/clearance", h.handleClearance)
	})
}

type approvePayload struct {
	LastWorkingDay time.Time `json:"last_working_day"`
}

type clearancePayload struct {
	NoDueGranted bool `json:"no_due_granted"`
	FnFSettled   bool `json:"fnf_settled"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	params := ListResignationsParams{
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

	resignations, err := h.exitService.ListResignations(r.Context(), params)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "Failed to list resignations"})
		return
	}
	render.JSON(w, r, resignations)
}

func (h *Handler) handleApply(w http.ResponseWriter, r *http.Request) {
	var params ApplyResignationParams
	if err := render.DecodeJSON(r.Body, &params); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid request body"})
		return
	}

	created, err := h.exitService.ApplyResignation(r.Context(), params)
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
		render.JSON(w, r, errorResponse{Error: "Invalid resignation id"})
		return
	}

	res, err := h.exitService.GetResignation(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, res)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid resignation id"})
		return
	}

	var payload approvePayload
	if err := render.DecodeJSON(r.Body, &payload); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid request body"})
		return
	}

	approved, err := h.exitService.ApproveResignation(r.Context(), id, payload.LastWorkingDay)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, approved)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid resignation id"})
		return
	}

	rejected, err := h.exitService.RejectResignation(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, rejected)
}

func (h *Handler) handleClearance(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid resignation id"})
		return
	}

	var payload clearancePayload
	if err := render.DecodeJSON(r.Body, &payload); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid request body"})
		return
	}

	updated, err := h.exitService.UpdateClearance(r.Context(), id, payload.NoDueGranted, payload.FnFSettled)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, updated)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrResignationNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, errorResponse{Error: "Resignation not found"})
	case errors.Is(err, ErrMissingLastWorkingDay):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: err.Error()})
	case errors.Is(err, ErrAlreadyDecided), errors.Is(err, ErrNotApproved):
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, errorResponse{Error: err.Error()})
	default:
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "Internal server error"})
	}
}
