package exit

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusApplied  Status = "applied"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusSettled  Status = "settled"
)

type Resignation struct {
	ID              uuid.UUID  `json:"id"`
	EmployeeID      uuid.UUID  `json:"employee_id"`
	ResignationDate time.Time  `json:"resignation_date"`
	LastWorkingDay  *time.Time `json:"last_working_day,omitempty"`
	Reason          string     `json:"reason"`
	Status          Status     `json:"status"`
	NoDueGranted    bool       `json:"no_due_granted"`
	FnFSettled      bool       `json:"fnf_settled"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ApplyResignationParams struct {
	EmployeeID      uuid.UUID `json:"employee_id"`
	ResignationDate time.Time `json:"resignation_date"`
	Reason          string    `json:"reason"`
}

type ListResignationsParams struct {
	EmployeeID uuid.UUID
	Status     Status
	Limit      int32
	Offset     int32
}
