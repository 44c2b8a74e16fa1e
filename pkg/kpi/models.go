package kpi

import (
	"time"

	"github.com/google/uuid"
)

type PlanStatus string

const (
	PlanStatusDraft      PlanStatus = "draft"
	PlanStatusInProgress PlanStatus = "in_progress"
	PlanStatusComplete   PlanStatus = "complete"
)

type Plan struct {
	ID          uuid.UUID  `json:"id"`
	EmployeeID  uuid.UUID  `json:"employee_id"`
	PlanName    string     `json:"plan_name"`
	Period      string     `json:"period"`
	Rating      string     `json:"rating,omitempty"`
	Status      PlanStatus `json:"status"`
	CompletedOn *time.Time `json:"completed_on,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CreatePlanParams struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	PlanName   string    `json:"plan_name"`
	Period     string    `json:"period"`
}

type FeedbackStatus string

const (
	FeedbackStatusRequested FeedbackStatus = "requested"
	FeedbackStatusCompleted FeedbackStatus = "completed"
)

// FeedbackRequest asks an employee to weigh in on a topic, typically as
// part of an appraisal cycle.
type FeedbackRequest struct {
	ID         uuid.UUID      `json:"id"`
	EmployeeID uuid.UUID      `json:"employee_id"`
	Topic      string         `json:"topic"`
	DueDate    time.Time      `json:"due_date"`
	Status     FeedbackStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

type RequestFeedbackParams struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	Topic      string    `json:"topic"`
	DueDate    time.Time `json:"due_date"`
}
