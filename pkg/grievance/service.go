package grievance

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
	ErrGrievanceNotFound = errors.New("grievance not found")
	ErrMissingCategory   = errors.New("category is required")
	ErrInvalidLevel      = errors.New("invalid escalation level")
	ErrAtMaxLevel        = errors.New("grievance already at the highest level")
	ErrAlreadyResolved   = errors.New("grievance already resolved")
	ErrInvalidEmail      = errors.New("owner email is required")
)

// Notifier is the slice of the notification composer the grievance
// service uses. Notification failures are logged, never surfaced.
type Notifier interface {
	NotifyGrievanceRaised(ctx context.Context, ticketNo string) (notify.Result, error)
	NotifyGrievanceEscalated(ctx context.Context, ticketNo string) (notify.Result, error)
	NotifyGrievanceResolved(ctx context.Context, ticketNo string) (notify.Result, error)
}

type GrievanceService struct {
	repo     GrievanceRepository
	notifier Notifier
}

func NewGrievanceService(repo GrievanceRepository, notifier Notifier) *GrievanceService {
	return &GrievanceService{repo: repo, notifier: notifier}
}

func newTicketNo() string {
	return "GRV-" + strings.ToUpper(uuid.New().String()[:8])
}

// RaiseGrievance opens a ticket at level one and alerts its owners.
func (s *GrievanceService) RaiseGrievance(ctx context.Context, params RaiseGrievanceParams) (Grievance, error) {
	if strings.TrimSpace(params.Category) == "" {
		return Grievance{}, ErrMissingCategory
	}

	created, err := s.repo.CreateGrievance(ctx, Grievance{
		ID:          uuid.New(),
		TicketNo:    newTicketNo(),
		EmployeeID:  params.EmployeeID,
		Category:    params.Category,
		Description: params.Description,
		Level:       MinLevel,
		Status:      StatusOpen,
	})
	if err != nil {
		return Grievance{}, fmt.Errorf("failed to create grievance: %w", err)
	}

	if s.notifier != nil {
		if _, err := s.notifier.NotifyGrievanceRaised(ctx, created.TicketNo); err != nil {
			slog.Error("Failed to send grievance raised notification", "ticketNo", created.TicketNo, "err", err)
		}
	}
	return created, nil
}

// Escalate moves an unresolved ticket up one level and alerts the owners
// of the new level.
func (s *GrievanceService) Escalate(ctx context.Context, ticketNo string) (Grievance, error) {
	existing, err := s.repo.GetByTicketNo(ctx, ticketNo)
	if err != nil {
		return Grievance{}, err
	}
	if existing.Status == StatusResolved || existing.Status == StatusClosed {
		return Grievance{}, ErrAlreadyResolved
	}
	if existing.Level >= MaxLevel {
		return Grievance{}, ErrAtMaxLevel
	}

	escalated, err := s.repo.SetLevel(ctx, ticketNo, existing.Level+1, StatusEscalated)
	if err != nil {
		return Grievance{}, fmt.Errorf("failed to escalate grievance: %w", err)
	}

	if s.notifier != nil {
		if _, err := s.notifier.NotifyGrievanceEscalated(ctx, ticketNo); err != nil {
			slog.Error("Failed to send grievance escalated notification", "ticketNo", ticketNo, "err", err)
		}
	}
	return escalated, nil
}

// Resolve closes a ticket with a resolution note and informs the employee.
func (s *GrievanceService) Resolve(ctx context.Context, ticketNo string, resolution string) (Grievance, error) {
	existing, err := s.repo.GetByTicketNo(ctx, ticketNo)
	if err != nil {
		return Grievance{}, err
	}
	if existing.Status == StatusResolved || existing.Status == StatusClosed {
		return Grievance{}, ErrAlreadyResolved
	}

	resolved, err := s.repo.SetResolution(ctx, ticketNo, resolution, StatusResolved)
	if err != nil {
		return Grievance{}, fmt.Errorf("failed to resolve grievance: %w", err)
	}

	if s.notifier != nil {
		if _, err := s.notifier.NotifyGrievanceResolved(ctx, ticketNo); err != nil {
			slog.Error("Failed to send grievance resolved notification", "ticketNo", ticketNo, "err", err)
		}
	}
	return resolved, nil
}

func (s *GrievanceService) GetByTicketNo(ctx context.Context, ticketNo string) (Grievance, error) {
	return s.repo.GetByTicketNo(ctx, ticketNo)
}

func (s *GrievanceService) ListGrievances(ctx context.Context, params ListGrievancesParams) ([]Grievance, error) {
	return s.repo.ListGrievances(ctx, params)
}

// AddOwner registers a handler address for an escalation level.
func (s *GrievanceService) AddOwner(ctx context.Context, level int, email string) (Owner, error) {
	if level < MinLevel || level > MaxLevel {
		return Owner{}, ErrInvalidLevel
	}
	if strings.TrimSpace(email) == "" {
		return Owner{}, ErrInvalidEmail
	}
	return s.repo.AddOwner(ctx, level, strings.TrimSpace(email))
}

func (s *GrievanceService) ListOwners(ctx context.Context, level int) ([]Owner, error) {
	if level < MinLevel || level > MaxLevel {
		return nil, ErrInvalidLevel
	}
	return s.repo.ListOwners(ctx, level)
}
