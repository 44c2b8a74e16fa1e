package policy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/tendant/simple-hrms/pkg/notify"
)

var (
	ErrPolicyNotFound = errors.New("policy not found")
	ErrMissingName    = errors.New("policy name is required")
)

// Notifier is the slice of the notification composer the policy service
// uses. Notification failures are logged, never surfaced.
type Notifier interface {
	NotifyNewPolicyAdded(ctx context.Context, policyID uuid.UUID) (notify.Result, error)
}

type PolicyService struct {
	repo     PolicyRepository
	notifier Notifier
}

func NewPolicyService(repo PolicyRepository, notifier Notifier) *PolicyService {
	return &PolicyService{repo: repo, notifier: notifier}
}

// CreatePolicy publishes a company policy and broadcasts the announcement.
func (s *PolicyService) CreatePolicy(ctx context.Context, params CreatePolicyParams) (Policy, error) {
	if strings.TrimSpace(params.PolicyName) == "" {
		return Policy{}, ErrMissingName
	}

	created, err := s.repo.CreatePolicy(ctx, params)
	if err != nil {
		return Policy{}, fmt.Errorf("failed to create policy: %w", err)
	}

	if s.notifier != nil {
		if _, err := s.notifier.NotifyNewPolicyAdded(ctx, created.ID); err != nil {
			slog.Error("Failed to send policy notification", "policyID", created.ID, "err", err)
		}
	}
	return created, nil
}

// UpdatePolicy revises an existing policy. Updates do not re-broadcast.
func (s *PolicyService) UpdatePolicy(ctx context.Context, params UpdatePolicyParams) (Policy, error) {
	if strings.TrimSpace(params.PolicyName) == "" {
		return Policy{}, ErrMissingName
	}
	return s.repo.UpdatePolicy(ctx, params)
}

func (s *PolicyService) GetPolicy(ctx context.Context, id uuid.UUID) (Policy, error) {
	return s.repo.GetPolicy(ctx, id)
}

func (s *PolicyService) ListPolicies(ctx context.Context) ([]Policy, error) {
	return s.repo.ListPolicies(ctx)
}
