package emailtemplate

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrTemplateNotFound     = errors.New("template not found")
	ErrEmptySubject         = errors.New("template subject cannot be empty")
	ErrEmptyBody            = errors.New("template body cannot be empty")
	ErrUnknownTemplateType  = errors.New("unknown template type")
	ErrActiveTemplateExists = errors.New("another active template exists for this type")
)

// TemplateService provides methods for notification template management.
// It enforces the store invariant of at most one active template per type.
type TemplateService struct {
	repo TemplateRepository
}

func NewTemplateService(repo TemplateRepository) *TemplateService {
	return &TemplateService{repo: repo}
}

// CreateTemplate adds a new template. Creating it active fails when the
// type already has an active template.
func (s *TemplateService) CreateTemplate(ctx context.Context, params CreateTemplateParams) (Template, error) {
	if !params.Type.IsValid() {
		return Template{}, fmt.Errorf("%w: %s", ErrUnknownTemplateType, params.Type)
	}
	if params.Subject == "" {
		return Template{}, ErrEmptySubject
	}
	if params.Body == "" {
		return Template{}, ErrEmptyBody
	}
	if params.Status == "" {
		params.Status = StatusInactive
	}

	if params.Status == StatusActive {
		active, err := s.repo.IsAnotherTemplateActive(ctx, params.Type, uuid.Nil)
		if err != nil {
			return Template{}, fmt.Errorf("failed to check active templates: %w", err)
		}
		if active {
			return Template{}, ErrActiveTemplateExists
		}
	}

	return s.repo.CreateTemplate(ctx, params)
}

// UpdateTemplate modifies an existing template's content and address lists.
// Type and status are changed through ChangeStatus, not here.
func (s *TemplateService) UpdateTemplate(ctx context.Context, params UpdateTemplateParams) (Template, error) {
	if params.Subject == "" {
		return Template{}, ErrEmptySubject
	}
	if params.Body == "" {
		return Template{}, ErrEmptyBody
	}
	return s.repo.UpdateTemplate(ctx, params)
}

// DeleteTemplate soft-deletes a template by marking it inactive
func (s *TemplateService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	return s.repo.ChangeStatus(ctx, id, StatusInactive)
}

// GetTemplate retrieves a template by ID
func (s *TemplateService) GetTemplate(ctx context.Context, id uuid.UUID) (Template, error) {
	return s.repo.GetTemplate(ctx, id)
}

// GetActiveByType retrieves the single active template for a type
func (s *TemplateService) GetActiveByType(ctx context.Context, templateType TemplateType) (Template, error) {
	return s.repo.GetActiveByType(ctx, templateType)
}

// ListTemplates returns templates matching the search with paging, plus the total count
func (s *TemplateService) ListTemplates(ctx context.Context, params ListTemplatesParams) ([]Template, int64, error) {
	templates, err := s.repo.ListTemplates(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountTemplates(ctx, params.Search)
	if err != nil {
		return nil, 0, err
	}
	return templates, total, nil
}

// ChangeStatus activates or deactivates a template. Activation fails when
// another template of the same type is already active.
func (s *TemplateService) ChangeStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if status != StatusActive && status != StatusInactive {
		return fmt.Errorf("invalid status: %s", status)
	}

	if status == StatusActive {
		t, err := s.repo.GetTemplate(ctx, id)
		if err != nil {
			return err
		}
		active, err := s.repo.IsAnotherTemplateActive(ctx, t.Type, id)
		if err != nil {
			return fmt.Errorf("failed to check active templates: %w", err)
		}
		if active {
			return ErrActiveTemplateExists
		}
	}

	return s.repo.ChangeStatus(ctx, id, status)
}
