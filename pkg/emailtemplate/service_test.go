package emailtemplate

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTemplate(t *testing.T) {
	ctx := context.Background()
	service := NewTemplateService(NewInMemoryTemplateRepository())

	tests := []struct {
		name    string
		params  CreateTemplateParams
		wantErr error
	}{
		{
			name: "valid template",
			params: CreateTemplateParams{
				Type:    TypeWelcome,
				Subject: "Welcome {FirstName}",
				Body:    "Hi {FirstName}, welcome to {Department}.",
				Status:  StatusActive,
			},
		},
		{
			name: "unknown type",
			params: CreateTemplateParams{
				Type:    "not_a_type",
				Subject: "s",
				Body:    "b",
			},
			wantErr: ErrUnknownTemplateType,
		},
		{
			name: "empty subject",
			params: CreateTemplateParams{
				Type: TypeWelcome,
				Body: "b",
			},
			wantErr: ErrEmptySubject,
		},
		{
			name: "empty body",
			params: CreateTemplateParams{
				Type:    TypeWelcome,
				Subject: "s",
			},
			wantErr: ErrEmptyBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			template, err := service.CreateTemplate(ctx, tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, template.ID)
			assert.Equal(t, tt.params.Type, template.Type)
		})
	}
}

func TestCreateTemplateDefaultsToInactive(t *testing.T) {
	ctx := context.Background()
	service := NewTemplateService(NewInMemoryTemplateRepository())

	template, err := service.CreateTemplate(ctx, CreateTemplateParams{
		Type:    TypeBirthday,
		Subject: "s",
		Body:    "b",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusInactive, template.Status)
}

func TestSingleActiveTemplatePerType(t *testing.T) {
	ctx := context.Background()
	service := NewTemplateService(NewInMemoryTemplateRepository())

	_, err := service.CreateTemplate(ctx, CreateTemplateParams{
		Type:    TypeLeaveStatus,
		Subject: "s1",
		Body:    "b1",
		Status:  StatusActive,
	})
	require.NoError(t, err)

	// A second active template of the same type is rejected
	_, err = service.CreateTemplate(ctx, CreateTemplateParams{
		Type:    TypeLeaveStatus,
		Subject: "s2",
		Body:    "b2",
		Status:  StatusActive,
	})
	assert.ErrorIs(t, err, ErrActiveTemplateExists)

	// An inactive one is fine
	second, err := service.CreateTemplate(ctx, CreateTemplateParams{
		Type:    TypeLeaveStatus,
		Subject: "s2",
		Body:    "b2",
		Status:  StatusInactive,
	})
	require.NoError(t, err)

	// Activating it while the first is still active is rejected
	err = service.ChangeStatus(ctx, second.ID, StatusActive)
	assert.ErrorIs(t, err, ErrActiveTemplateExists)

	// A different type can be active concurrently
	_, err = service.CreateTemplate(ctx, CreateTemplateParams{
		Type:    TypeGrievanceRaised,
		Subject: "s",
		Body:    "b",
		Status:  StatusActive,
	})
	assert.NoError(t, err)
}

func TestDeleteTemplateIsSoft(t *testing.T) {
	ctx := context.Background()
	service := NewTemplateService(NewInMemoryTemplateRepository())

	template, err := service.CreateTemplate(ctx, CreateTemplateParams{
		Type:    TypeWelcome,
		Subject: "s",
		Body:    "b",
		Status:  StatusActive,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteTemplate(ctx, template.ID))

	// Record still readable by ID, but no longer active
	got, err := service.GetTemplate(ctx, template.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusInactive, got.Status)

	_, err = service.GetActiveByType(ctx, TypeWelcome)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestChangeStatusAfterDeactivation(t *testing.T) {
	ctx := context.Background()
	service := NewTemplateService(NewInMemoryTemplateRepository())

	first, err := service.CreateTemplate(ctx, CreateTemplateParams{
		Type:    TypeKPIComplete,
		Subject: "s1",
		Body:    "b1",
		Status:  StatusActive,
	})
	require.NoError(t, err)

	second, err := service.CreateTemplate(ctx, CreateTemplateParams{
		Type:    TypeKPIComplete,
		Subject: "s2",
		Body:    "b2",
	})
	require.NoError(t, err)

	require.NoError(t, service.ChangeStatus(ctx, first.ID, StatusInactive))
	require.NoError(t, service.ChangeStatus(ctx, second.ID, StatusActive))

	active, err := service.GetActiveByType(ctx, TypeKPIComplete)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
}

func TestListTemplates(t *testing.T) {
	ctx := context.Background()
	service := NewTemplateService(NewInMemoryTemplateRepository())

	_, err := service.CreateTemplate(ctx, CreateTemplateParams{Type: TypeBirthday, Subject: "Happy Birthday", Body: "b"})
	require.NoError(t, err)
	_, err = service.CreateTemplate(ctx, CreateTemplateParams{Type: TypeWelcome, Subject: "Welcome Aboard", Body: "b"})
	require.NoError(t, err)

	all, total, err := service.ListTemplates(ctx, ListTemplatesParams{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, int64(2), total)

	matched, total, err := service.ListTemplates(ctx, ListTemplatesParams{Search: "welcome"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, TypeWelcome, matched[0].Type)
	assert.Equal(t, int64(1), total)

	paged, total, err := service.ListTemplates(ctx, ListTemplatesParams{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, paged, 1)
	assert.Equal(t, int64(2), total)
}

func TestUpdateTemplate(t *testing.T) {
	ctx := context.Background()
	service := NewTemplateService(NewInMemoryTemplateRepository())

	template, err := service.CreateTemplate(ctx, CreateTemplateParams{
		Type:    TypeWelcome,
		Subject: "old",
		Body:    "old body",
	})
	require.NoError(t, err)

	updated, err := service.UpdateTemplate(ctx, UpdateTemplateParams{
		ID:       template.ID,
		Subject:  "new",
		Body:     "new body",
		CCEmails: "hr@co.com;ops@co.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Subject)
	assert.Equal(t, "hr@co.com;ops@co.com", updated.CCEmails)

	_, err = service.UpdateTemplate(ctx, UpdateTemplateParams{ID: uuid.New(), Subject: "s", Body: "b"})
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}
