package role

import (
	"time"

	"github.com/google/uuid"
)

// Role is an HR role such as "HR Manager" or "Payroll Admin". Role
// membership drives who receives role-scoped notifications.
type Role struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateRoleParams struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
