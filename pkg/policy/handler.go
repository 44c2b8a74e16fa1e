package policy

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

type Handler struct {
	policyService *PolicyService
}

func NewHandler(policyService *PolicyService) *Handler {
	return &Handler{policyService: policyService}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/policies", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	policies, err := h.policyService.ListPolicies(r.Context())
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "Failed to list policies"})
		return
	}
	render.JSON(w, r, policies)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var params CreatePolicyParams
	if err := render.DecodeJSON(r.Body, &params); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid request body"})
		return
	}

	created, err := h.policyService.CreatePolicy(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrMissingName) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, errorResponse{Error: err.Error()})
			return
		}
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "Internal server error"})
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid policy id"})
		return
	}

	var params UpdatePolicyParams
	if err := render.DecodeJSON(r.Body, &params); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid request body"})
		return
	}
	params.ID = id

	updated, err := h.policyService.UpdatePolicy(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, ErrPolicyNotFound):
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, errorResponse{Error: "Policy not found"})
		case errors.Is(err, ErrMissingName):
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, errorResponse{Error: err.Error()})
		default:
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, errorResponse{Error: "Internal server error"})
		}
		return
	}
	render.JSON(w, r, updated)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid policy id"})
		return
	}

	p, err := h.policyService.GetPolicy(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPolicyNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, errorResponse{Error: "Policy not found"})
			return
		}
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "Internal server error"})
		return
	}
	render.JSON(w, r, p)
}
