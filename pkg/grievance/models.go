package grievance

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusOpen      Status = "open"
	StatusEscalated Status = "escalated"
	StatusResolved  Status = "resolved"
	StatusClosed    Status = "closed"
)

// Escalation runs from level 1 (first responder) to level 3 (final
// authority).
const (
	MinLevel = 1
	MaxLevel = 3
)

type Grievance struct {
	ID          uuid.UUID `json:"id"`
	TicketNo    string    `json:"ticket_no"`
	EmployeeID  uuid.UUID `json:"employee_id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Level       int       `json:"level"`
	Status      Status    `json:"status"`
	Resolution  string    `json:"resolution,omitempty"`
	RaisedOn    time.Time `json:"raised_on"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Owner is a grievance handler address for one escalation level.
type Owner struct {
	ID    uuid.UUID `json:"id"`
	Level int       `json:"level"`
	Email string    `json:"email"`
}

type RaiseGrievanceParams struct {
	EmployeeID  uuid.UUID `json:"employee_id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
}

type ListGrievancesParams struct {
	EmployeeID uuid.UUID
	Status     Status
	Limit      int32
	Offset     int32
}
