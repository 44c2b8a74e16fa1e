package grievance

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

type Handler struct {
	grievanceService *GrievanceService
}

func NewHandler(grievanceService *GrievanceService) *Handler {
	return &Handler{grievanceService: grievanceService}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/grievances", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleRaise)
		r.Get("/{ticketNo}", h.handleGet)
		r.Post("/{ticketNo}/escalate", h.handleEscalate)
		r.Post("/{ticketNo}/resolve", h.handleResolve)
		r.Get("/owners/{level}", h.handleListOwners)
		r.Post("/owners", h.handleAddOwner)
	})
}

type resolvePayload struct {
	Resolution string `json:"resolution"`
}

type ownerPayload struct {
	Level int    `json:"level"`
	Email string `json:"email"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	params := ListGrievancesParams{
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

	grievances, err := h.grievanceService.ListGrievances(r.Context(), params)
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "Failed to list grievances"})
		return
	}
	render.JSON(w, r, grievances)
}

func (h *Handler) handleRaise(w http.ResponseWriter, r *http.Request) {
	var params RaiseGrievanceParams
	if err := render.DecodeJSON(r.Body, &params); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid request body"})
		return
	}

	created, err := h.grievanceService.RaiseGrievance(r.Context(), params)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	g, err := h.grievanceService.GetByTicketNo(r.Context(), chi.URLParam(r, "ticketNo"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, g)
}

func (h *Handler) handleEscalate(w http.ResponseWriter, r *http.Request) {
	g, err := h.grievanceService.Escalate(r.Context(), chi.URLParam(r, "ticketNo"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, g)
}

func (h *Handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	var payload resolvePayload
	if err := render.DecodeJSON(r.Body, &payload); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid request body"})
		return
	}

	g, err := h.grievanceService.Resolve(r.Context(), chi.URLParam(r, "ticketNo"), payload.Resolution)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, g)
}

func (h *Handler) handleListOwners(w http.ResponseWriter, r *http.Request) {
	level, err := strconv.Atoi(chi.URLParam(r, "level"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid level"})
		return
	}

	owners, err := h.grievanceService.ListOwners(r.Context(), level)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, owners)
}

func (h *Handler) handleAddOwner(w http.ResponseWriter, r *http.Request) {
	var payload ownerPayload
	if err := render.DecodeJSON(r.Body, &payload); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid request body"})
		return
	}

	owner, err := h.grievanceService.AddOwner(r.Context(), payload.Level, payload.Email)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, owner)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrGrievanceNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, errorResponse{Error: "Grievance not found"})
	case errors.Is(err, ErrMissingCategory), errors.Is(err, ErrInvalidLevel), errors.Is(err, ErrInvalidEmail):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: err.Error()})
	case errors.Is(err, ErrAtMaxLevel), errors.Is(err, ErrAlreadyResolved):
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, errorResponse{Error: err.Error()})
	default:
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "Internal server error"})
	}
}
