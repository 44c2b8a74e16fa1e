package emailtemplate

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryTemplateRepository implements TemplateRepository using in-memory storage
type InMemoryTemplateRepository struct {
	mu        sync.RWMutex
	templates map[uuid.UUID]Template
}

// NewInMemoryTemplateRepository creates a new in-memory template repository
func NewInMemoryTemplateRepository() *InMemoryTemplateRepository {
	return &InMemoryTemplateRepository{
		templates: make(map[uuid.UUID]Template),
	}
}

func (r *InMemoryTemplateRepository) GetTemplate(ctx context.Context, id uuid.UUID) (Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.templates[id]
	if !ok {
		return Template{}, ErrTemplateNotFound
	}
	return t, nil
}

func (r *InMemoryTemplateRepository) GetActiveByType(ctx context.Context, templateType TemplateType) (Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.templates {
		if t.Type == templateType && t.Status == StatusActive {
			return t, nil
		}
	}
	return Template{}, ErrTemplateNotFound
}

func (r *InMemoryTemplateRepository) ListTemplates(ctx context.Context, params ListTemplatesParams) ([]Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []Template{}
	for _, t := range r.templates {
		if matchesSearch(t, params.Search) {
			matched = append(matched, t)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Type != matched[j].Type {
			return matched[i].Type < matched[j].Type
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	start := int(params.Offset)
	if start > len(matched) {
		start = len(matched)
	}
	end := start + int(limit)
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (r *InMemoryTemplateRepository) CountTemplates(ctx context.Context, search string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, t := range r.templates {
		if matchesSearch(t, search) {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryTemplateRepository) CreateTemplate(ctx context.Context, params CreateTemplateParams) (Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	t := Template{
		ID:        uuid.New(),
		Type:      params.Type,
		Subject:   params.Subject,
		Body:      params.Body,
		ToEmails:  params.ToEmails,
		CCEmails:  params.CCEmails,
		BCCEmails: params.BCCEmails,
		Status:    params.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.templates[t.ID] = t
	return t, nil
}

func (r *InMemoryTemplateRepository) UpdateTemplate(ctx context.Context, params UpdateTemplateParams) (Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.templates[params.ID]
	if !ok {
		return Template{}, ErrTemplateNotFound
	}
	t.Subject = params.Subject
	t.Body = params.Body
	t.ToEmails = params.ToEmails
	t.CCEmails = params.CCEmails
	t.BCCEmails = params.BCCEmails
	t.UpdatedAt = time.Now().UTC()
	r.templates[params.ID] = t
	return t, nil
}

func (r *InMemoryTemplateRepository) ChangeStatus(ctx context.Context, id uuid.UUID, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.templates[id]
	if !ok {
		return ErrTemplateNotFound
	}
	t.Status = status
	t.UpdatedAt = time.Now().UTC()
	r.templates[id] = t
	return nil
}

func (r *InMemoryTemplateRepository) IsAnotherTemplateActive(ctx context.Context, templateType TemplateType, excludeID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.templates {
		if t.Type == templateType && t.Status == StatusActive && t.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func matchesSearch(t Template, search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(string(t.Type)), search) ||
		strings.Contains(strings.ToLower(t.Subject), search)
}
