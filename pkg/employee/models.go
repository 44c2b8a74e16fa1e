package employee

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive Status = "active"
	StatusExited Status = "exited"
)

type Employee struct {
	ID                    uuid.UUID  `json:"id"`
	FirstName             string     `json:"first_name"`
	LastName              string     `json:"last_name"`
	Department            string     `json:"department"`
	Designation           string     `json:"designation"`
	DateOfBirth           time.Time  `json:"date_of_birth"`
	JoiningDate           time.Time  `json:"joining_date"`
	PersonalEmail         string     `json:"personal_email"`
	WorkEmail             string     `json:"work_email"`
	ReportingManagerEmail string     `json:"reporting_manager_email"`
	Status                Status     `json:"status"`
	ExitDate              *time.Time `json:"exit_date,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

type CreateEmployeeParams struct {
	FirstName             string    `json:"first_name"`
	LastName              string    `json:"last_name"`
	Department            string    `json:"department"`
	Designation           string    `json:"designation"`
	DateOfBirth           time.Time `json:"date_of_birth"`
	JoiningDate           time.Time `json:"joining_date"`
	PersonalEmail         string    `json:"personal_email"`
	WorkEmail             string    `json:"work_email"`
	ReportingManagerEmail string    `json:"reporting_manager_email"`
}

type UpdateEmployeeParams struct {
	ID                    uuid.UUID `json:"id"`
	Department            string    `json:"department"`
	Designation           string    `json:"designation"`
	PersonalEmail         string    `json:"personal_email"`
	WorkEmail             string    `json:"work_email"`
	ReportingManagerEmail string    `json:"reporting_manager_email"`
}

type ListEmployeesParams struct {
	Search string
	Status Status
	Limit  int32
	Offset int32
}
