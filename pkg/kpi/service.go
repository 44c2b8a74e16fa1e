package kpi

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
	ErrPlanNotFound     = errors.New("appraisal plan not found")
	ErrFeedbackNotFound = errors.New("feedback request not found")
	ErrMissingPlanName  = errors.New("plan name is required")
	ErrMissingTopic     = errors.New("feedback topic is required")
	ErrPlanComplete     = errors.New("appraisal plan already complete")
	ErrFeedbackComplete = errors.New("feedback request already completed")
)

// Notifier is the slice of the notification composer the KPI service
// uses. Notification failures are logged, never surfaced.
type Notifier interface {
	NotifyKPIComplete(ctx context.Context, planID uuid.UUID) (notify.Result, error)
	NotifyFeedbackRequested(ctx context.Context, feedbackID uuid.UUID) (notify.Result, error)
	NotifyFeedbackCompleted(ctx context.Context, feedbackID uuid.UUID) (notify.Result, error)
}

type KPIService struct {
	repo     KPIRepository
	notifier Notifier
}

func NewKPIService(repo KPIRepository, notifier Notifier) *KPIService {
	return &KPIService{repo: repo, notifier: notifier}
}

func (s *KPIService) CreatePlan(ctx context.Context, params CreatePlanParams) (Plan, error) {
	if strings.TrimSpace(params.PlanName) == "" {
		return Plan{}, ErrMissingPlanName
	}
	return s.repo.CreatePlan(ctx, params)
}

// CompletePlan closes an appraisal plan with its rating and informs the
// employee.
func (s *KPIService) CompletePlan(ctx context.Context, id uuid.UUID, rating string) (Plan, error) {
	existing, err := s.repo.GetPlan(ctx, id)
	if err != nil {
		return Plan{}, err
	}
	if existing.Status == PlanStatusComplete {
		return Plan{}, ErrPlanComplete
	}

	completed, err := s.repo.CompletePlan(ctx, id, rating)
	if err != nil {
		return Plan{}, fmt.Errorf("failed to complete plan: %w", err)
	}

	if s.notifier != nil {
		if _, err := s.notifier.NotifyKPIComplete(ctx, id); err != nil {
			slog.Error("Failed to send KPI complete notification", "planID", id, "err", err)
		}
	}
	return completed, nil
}

func (s *KPIService) GetPlan(ctx context.Context, id uuid.UUID) (Plan, error) {
	return s.repo.GetPlan(ctx, id)
}

func (s *KPIService) ListPlans(ctx context.Context, employeeID uuid.UUID) ([]Plan, error) {
	return s.repo.ListPlans(ctx, employeeID)
}

// RequestFeedback opens a feedback request and asks the employee for it.
func (s *KPIService) RequestFeedback(ctx context.Context, params RequestFeedbackParams) (FeedbackRequest, error) {
	if strings.TrimSpace(params.Topic) == "" {
		return FeedbackRequest{}, ErrMissingTopic
	}

	created, err := s.repo.CreateFeedback(ctx, params)
	if err != nil {
		return FeedbackRequest{}, fmt.Errorf("failed to create feedback request: %w", err)
	}

	if s.notifier != nil {
		if _, err := s.notifier.NotifyFeedbackRequested(ctx, created.ID); err != nil {
			slog.Error("Failed to send feedback requested notification", "feedbackID", created.ID, "err", err)
		}
	}
	return created, nil
}

// CompleteFeedback marks a feedback request fulfilled and thanks the
// employee.
func (s *KPIService) CompleteFeedback(ctx context.Context, id uuid.UUID) (FeedbackRequest, error) {
	existing, err := s.repo.GetFeedback(ctx, id)
	if err != nil {
		return FeedbackRequest{}, err
	}
	if existing.Status == FeedbackStatusCompleted {
		return FeedbackRequest{}, ErrFeedbackComplete
	}

	completed, err := s.repo.CompleteFeedback(ctx, id)
	if err != nil {
		return FeedbackRequest{}, fmt.Errorf("failed to complete feedback request: %w", err)
	}

	if s.notifier != nil {
		if _, err := s.notifier.NotifyFeedbackCompleted(ctx, id); err != nil {
			slog.Error("Failed to send feedback completed notification", "feedbackID", id, "err", err)
		}
	}
	return completed, nil
}

func (s *KPIService) GetFeedback(ctx context.Context, id uuid.UUID) (FeedbackRequest, error) {
	return s.repo.GetFeedback(ctx, id)
}
