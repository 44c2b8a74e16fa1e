package emailtemplate

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDatabase(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()

	dbName := "hrms_db"
	dbUser := "hrms"
	dbPassword := "pwd"

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithInitScripts(filepath.Join("../../migrations", "hrms_db.sql")),
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	require.NoError(t, err)

	connString, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	poolConfig, err := pgxpool.ParseConfig(connString)
	require.NoError(t, err)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	require.NoError(t, err)

	cleanup := func() {
		pool.Close()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return pool, cleanup
}

func TestPostgresTemplateLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	pool, cleanup := setupTestDatabase(t)
	defer cleanup()

	repo := NewPostgresTemplateRepository(pool)
	service := NewTemplateService(repo)

	_, err := service.GetActiveByType(ctx, TypeWelcome)
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	first, err := service.CreateTemplate(ctx, CreateTemplateParams{
		Type:     TypeWelcome,
		Subject:  "Welcome {EmployeeName}",
		Body:     "Hello {EmployeeName}, welcome to {Department}.",
		CCEmails: "hr@example.com",
		Status:   StatusActive,
	})
	require.NoError(t, err)

	got, err := service.GetActiveByType(ctx, TypeWelcome)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "Welcome {EmployeeName}", got.Subject)
	assert.Equal(t, "hr@example.com", got.CCEmails)

	// a second active template for the same type is rejected
	_, err = service.CreateTemplate(ctx, CreateTemplateParams{
		Type:    TypeWelcome,
		Subject: "Welcome Again",
		Body:    "Another welcome body",
		Status:  StatusActive,
	})
	assert.ErrorIs(t, err, ErrActiveTemplateExists)

	second, err := service.CreateTemplate(ctx, CreateTemplateParams{
		Type:    TypeWelcome,
		Subject: "Welcome Again",
		Body:    "Another welcome body",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusInactive, second.Status)

	err = service.ChangeStatus(ctx, second.ID, StatusActive)
	assert.ErrorIs(t, err, ErrActiveTemplateExists)

	// deactivate first, then second can take over
	err = service.ChangeStatus(ctx, first.ID, StatusInactive)
	require.NoError(t, err)

	err = service.ChangeStatus(ctx, second.ID, StatusActive)
	require.NoError(t, err)

	got, err = service.GetActiveByType(ctx, TypeWelcome)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)

	updated, err := service.UpdateTemplate(ctx, UpdateTemplateParams{
		ID:       second.ID,
		Subject:  "Welcome Aboard",
		Body:     "Hello {EmployeeName}",
		ToEmails: "buddy@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Welcome Aboard", updated.Subject)
	assert.Equal(t, "buddy@example.com", updated.ToEmails)

	templates, total, err := service.ListTemplates(ctx, ListTemplatesParams{Search: "welcome"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, templates, 2)
}
