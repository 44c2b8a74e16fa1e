package role

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

type Handler struct {
	roleService *RoleService
}

func NewHandler(roleService *RoleService) *Handler {
	return &Handler{roleService: roleService}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/roles", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
		r.Post("/{id}/members/{employeeID}", h.handleAssign)
		r.Delete("/{id}/members/{employeeID}", h.handleUnassign)
	})
}

type rolePayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roleService.FindRoles(r.Context())
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "Failed to list roles"})
		return
	}
	render.JSON(w, r, roles)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload rolePayload
	if err := render.DecodeJSON(r.Body, &payload); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid request body"})
		return
	}

	created, err := h.roleService.CreateRole(r.Context(), CreateRoleParams{
		Name:        payload.Name,
		Description: payload.Description,
	})
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
		render.JSON(w, r, errorResponse{Error: "Invalid role id"})
		return
	}

	role, err := h.roleService.GetRole(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, role)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid role id"})
		return
	}

	var payload rolePayload
	if err := render.DecodeJSON(r.Body, &payload); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid request body"})
		return
	}

	updated, err := h.roleService.UpdateRole(r.Context(), id, payload.Name, payload.Description)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, updated)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid role id"})
		return
	}

	if err := h.roleService.DeleteRole(r.Context(), id); err != nil {
		h.renderError(w, r, err)
		return
	}
	render.PlainText(w, r, http.StatusText(http.StatusOK))
}

func (h *Handler) handleAssign(w http.ResponseWriter, r *http.Request) {
	h.handleMembership(w, r, h.roleService.AssignRole)
}

func (h *Handler) handleUnassign(w http.ResponseWriter, r *http.Request) {
	h.handleMembership(w, r, h.roleService.UnassignRole)
}

func (h *Handler) handleMembership(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, roleID, employeeID uuid.UUID) error) {
	roleID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid role id"})
		return
	}
	employeeID, err := uuid.Parse(chi.URLParam(r, "employeeID"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: "Invalid employee id"})
		return
	}

	if err := op(r.Context(), roleID, employeeID); err != nil {
		h.renderError(w, r, err)
		return
	}
	render.PlainText(w, r, http.StatusText(http.StatusOK))
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrRoleNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, errorResponse{Error: "Role not found"})
	case errors.Is(err, ErrEmptyRoleName):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{Error: err.Error()})
	default:
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, errorResponse{Error: "Internal server error"})
	}
}
