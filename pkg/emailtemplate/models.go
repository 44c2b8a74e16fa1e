package emailtemplate

import (
	"time"

	"github.com/google/uuid"
)

// TemplateType identifies the business event a template is rendered for.
type TemplateType string

const (
	TypeBirthday            TemplateType = "birthday"
	TypeWorkAnniversary     TemplateType = "work_anniversary"
	TypeWelcome             TemplateType = "welcome"
	TypeResignationApplied  TemplateType = "resignation_applied"
	TypeResignationApproved TemplateType = "resignation_approved"
	TypeResignationRejected TemplateType = "resignation_rejected"
	TypeLeaveApplied        TemplateType = "leave_applied"
	TypeLeaveStatus         TemplateType = "leave_status"
	TypeGrievanceRaised     TemplateType = "grievance_raised"
	TypeGrievanceEscalated  TemplateType = "grievance_escalated"
	TypeGrievanceResolved   TemplateType = "grievance_resolved"
	TypeKPIComplete         TemplateType = "kpi_complete"
	TypeNewPolicyAdded      TemplateType = "new_policy_added"
	TypeFeedbackRequested   TemplateType = "feedback_requested"
	TypeFeedbackCompleted   TemplateType = "feedback_completed"
	TypeNewRoleAdded        TemplateType = "new_role_added"
)

// AllTemplateTypes returns every known template type
func AllTemplateTypes() []TemplateType {
	return []TemplateType{
		TypeBirthday,
		TypeWorkAnniversary,
		TypeWelcome,
		TypeResignationApplied,
		TypeResignationApproved,
		TypeResignationRejected,
		TypeLeaveApplied,
		TypeLeaveStatus,
		TypeGrievanceRaised,
		TypeGrievanceEscalated,
		TypeGrievanceResolved,
		TypeKPIComplete,
		TypeNewPolicyAdded,
		TypeFeedbackRequested,
		TypeFeedbackCompleted,
		TypeNewRoleAdded,
	}
}

// IsValid reports whether t is a known template type
func (t TemplateType) IsValid() bool {
	for _, known := range AllTemplateTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Status is a template's lifecycle status. The notification pipeline only
// ever reads active templates; delete is a soft transition to inactive.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Template is a stored notification template. Subject and Body may carry
// {Token} placeholders; ToEmails/CCEmails/BCCEmails are semicolon-delimited
// address lists and may be empty.
type Template struct {
	ID        uuid.UUID    `json:"id"`
	Type      TemplateType `json:"type"`
	Subject   string       `json:"subject"`
	Body      string       `json:"body"`
	ToEmails  string       `json:"to_emails"`
	CCEmails  string       `json:"cc_emails"`
	BCCEmails string       `json:"bcc_emails"`
	Status    Status       `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// CreateTemplateParams represents parameters for creating a template
type CreateTemplateParams struct {
	Type      TemplateType
	Subject   string
	Body      string
	ToEmails  string
	CCEmails  string
	BCCEmails string
	Status    Status
}

// UpdateTemplateParams represents parameters for updating a template
type UpdateTemplateParams struct {
	ID        uuid.UUID
	Subject   string
	Body      string
	ToEmails  string
	CCEmails  string
	BCCEmails string
}

// ListTemplatesParams represents search and paging parameters
type ListTemplatesParams struct {
	Search string
	Limit  int32
	Offset int32
}
