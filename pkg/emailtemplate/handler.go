package emailtemplate

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for notification template management
type Handler struct {
	templateService *TemplateService
}

// NewHandler creates a new template handler
func NewHandler(templateService *TemplateService) *Handler {
	return &Handler{templateService: templateService}
}

// RegisterRoutes registers the template routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/email-templates", func(r chi.Router) {
		r.Get("/", h.ListTemplates)
		r.Post("/", h.CreateTemplate)
		r.Get("/types", h.ListTemplateTypes)
		r.Get("/{id}", h.GetTemplate)
		r.Put("/{id}", h.UpdateTemplate)
		r.Delete("/{id}", h.DeleteTemplate)
		r.Put("/{id}/status", h.ChangeStatus)
	})
}

// ListTemplates handles the request to list templates with search and paging
func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	limit := int32(20)
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limitInt, err := strconv.Atoi(limitStr); err == nil {
			limit = int32(limitInt)
		}
	}
	offset := int32(0)
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if offsetInt, err := strconv.Atoi(offsetStr); err == nil {
			offset = int32(offsetInt)
		}
	}

	templates, total, err := h.templateService.ListTemplates(r.Context(), ListTemplatesParams{
		Search: r.URL.Query().Get("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		http.Error(w, "Failed to list templates: "+err.Error(), http.StatusInternalServerError)
		return
	}

	response := struct {
		Templates []Template `json:"templates"`
		Total     int64      `json:"total"`
	}{
		Templates: templates,
		Total:     total,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// ListTemplateTypes returns the template type vocabulary for admin UIs
func (h *Handler) ListTemplateTypes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AllTemplateTypes())
}

// GetTemplate handles the request to get a template by ID
func (h *Handler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid template ID", http.StatusBadRequest)
		return
	}

	template, err := h.templateService.GetTemplate(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			http.Error(w, "Template not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to get template: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(template)
}

// CreateTemplate handles the request to create a new template
func (h *Handler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Type      TemplateType `json:"type"`
		Subject   string       `json:"subject"`
		Body      string       `json:"body"`
		ToEmails  string       `json:"to_emails"`
		CCEmails  string       `json:"cc_emails"`
		BCCEmails string       `json:"bcc_emails"`
		Status    Status       `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	template, err := h.templateService.CreateTemplate(r.Context(), CreateTemplateParams{
		Type:      body.Type,
		Subject:   body.Subject,
		Body:      body.Body,
		ToEmails:  body.ToEmails,
		CCEmails:  body.CCEmails,
		BCCEmails: body.BCCEmails,
		Status:    body.Status,
	})
	if err != nil {
		if errors.Is(err, ErrActiveTemplateExists) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		if errors.Is(err, ErrEmptySubject) || errors.Is(err, ErrEmptyBody) || errors.Is(err, ErrUnknownTemplateType) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to create template: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(template)
}

// UpdateTemplate handles the request to update a template
func (h *Handler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid template ID", http.StatusBadRequest)
		return
	}

	var body struct {
		Subject   string `json:"subject"`
		Body      string `json:"body"`
		ToEmails  string `json:"to_emails"`
		CCEmails  string `json:"cc_emails"`
		BCCEmails string `json:"bcc_emails"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	template, err := h.templateService.UpdateTemplate(r.Context(), UpdateTemplateParams{
		ID:        id,
		Subject:   body.Subject,
		Body:      body.Body,
		ToEmails:  body.ToEmails,
		CCEmails:  body.CCEmails,
		BCCEmails: body.BCCEmails,
	})
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			http.Error(w, "Template not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, ErrEmptySubject) || errors.Is(err, ErrEmptyBody) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to update template: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(template)
}

// DeleteTemplate handles the request to soft-delete a template
func (h *Handler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid template ID", http.StatusBadRequest)
		return
	}

	if err := h.templateService.DeleteTemplate(r.Context(), id); err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			http.Error(w, "Template not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete template: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ChangeStatus handles the request to activate or deactivate a template
func (h *Handler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid template ID", http.StatusBadRequest)
		return
	}

	var body struct {
		Status Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.templateService.ChangeStatus(r.Context(), id, body.Status); err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			http.Error(w, "Template not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, ErrActiveTemplateExists) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "Failed to change template status: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
