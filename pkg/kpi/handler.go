package kpi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

type Handler struct {
	kpiService *KPIService
}

func NewHandler(kpiService *KPIService) *Handler {
	return &Handler{kpiService: kpiService}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/kpi-plans", func(r chi.Router) {
		r.Get("/", h.handleListPlans)
		r.Post("/", h.handleCreatePlan)
		r.Get("/{id}", h.handleGetPlan)
		r.Post("/{id}/complete", h.handleCompletePlan)
	})
	r.Route("/feedback-requests", func(r chi.Router) {
		r.Post("/", h.handleRequestFeedback)
		r.Get("/{id}", h.handleGetFeedback)
		r.Post("/{id}/complete", h.handleCompleteFeedback)
	})
}

type completePlanPayload struct {
	Rating string `json:"rating"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleListPlans(w http.ResponseWriter, r *http.Request) {
	var employeeID uuid.UUID
	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, errorResponse{Error: "Invalid employee_id"})
			return
		}
		employeeID = id
	}

	plans, err := h.kpiService.ListPlans(r.Context(), employeeID)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "Failed to list plans"})
		return
	}
	render.JSON(w, r, plans)
}

func (h *Handler) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var params CreatePlanParams
	if err := render.DecodeJSON(r.Body, &params); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid request body"})
		return
	}

	created, err := h.kpiService.CreatePlan(r.Context(), params)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}

func (h *Handler) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid plan id"})
		return
	}

	p, err := h.kpiService.GetPlan(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, p)
}

func (h *Handler) handleCompletePlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid plan id"})
		return
	}

	var payload completePlanPayload
	if err := render.DecodeJSON(r.Body, &payload); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid request body"})
		return
	}

	completed, err := h.kpiService.CompletePlan(r.Context(), id, payload.Rating)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, completed)
}

func (h *Handler) handleRequestFeedback(w http.ResponseWriter, r *http.Request) {
	var params RequestFeedbackParams
	if err := render.DecodeJSON(r.Body, &params); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid request body"})
		return
	}

	created, err := h.kpiService.RequestFeedback(r.Context(), params)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}

func (h *Handler) handleGetFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid feedback id"})
		return
	}

	f, err := h.kpiService.GetFeedback(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, f)
}

func (h *Handler) handleCompleteFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid feedback id"})
		return
	}

	completed, err := h.kpiService.CompleteFeedback(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, completed)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrPlanNotFound), errors.Is(err, ErrFeedbackNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, errorResponse{Error: err.Error()})
	case errors.Is(err, ErrMissingPlanName), errors.Is(err, ErrMissingTopic):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: err.Error()})
	case errors.Is(err, ErrPlanComplete), errors.Is(err, ErrFeedbackComplete):
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, errorResponse{Error: err.Error()})
	default:
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "Internal server error"})
	}
}
