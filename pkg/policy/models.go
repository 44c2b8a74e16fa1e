package policy

import (
	"time"

	"github.com/google/uuid"
)

type Policy struct {
	ID            uuid.UUID `json:"id"`
	PolicyName    string    `json:"policy_name"`
	DocumentName  string    `json:"document_name"`
	Description   string    `json:"description,omitempty"`
	EffectiveDate time.Time `json:"effective_date"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreatePolicyParams struct {
	PolicyName    string    `json:"policy_name"`
	DocumentName  string    `json:"document_name"`
	Description   string    `json:"description"`
	EffectiveDate time.Time `json:"effective_date"`
}

type UpdatePolicyParams struct {
	ID            uuid.UUID `json:"-"`
	PolicyName    string    `json:"policy_name"`
	DocumentName  string    `json:"document_name"`
	Description   string    `json:"description"`
	EffectiveDate time.Time `json:"effective_date"`
}
