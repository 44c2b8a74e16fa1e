package config

import (
	"github.com/tendant/simple-hrms/pkg/emailtemplate"
)

// SubjectConfig holds the fallback subject line per notification event.
// Template authors normally set the subject on the template itself; these
// values are used when a template leaves the subject blank.
type SubjectConfig struct {
	Birthday            string `env:"SUBJECT_BIRTHDAY" env-default:"Happy Birthday!"`
	WorkAnniversary     string `env:"SUBJECT_WORK_ANNIVERSARY" env-default:"Happy Work Anniversary!"`
	Welcome             string `env:"SUBJECT_WELCOME" env-default:"Welcome Aboard"`
	ResignationApplied  string `env:"SUBJECT_RESIGNATION_APPLIED" env-default:"Resignation Received"`
	ResignationApproved string `env:"SUBJECT_RESIGNATION_APPROVED" env-default:"Resignation Approved"`
	ResignationRejected string `env:"SUBJECT_RESIGNATION_REJECTED" env-default:"Resignation Rejected"`
	LeaveApplied        string `env:"SUBJECT_LEAVE_APPLIED" env-default:"Leave Application Received"`
	LeaveStatus         string `env:"SUBJECT_LEAVE_STATUS" env-default:"Leave Application Update"`
	GrievanceRaised     string `env:"SUBJECT_GRIEVANCE_RAISED" env-default:"Grievance Ticket Raised"`
	GrievanceEscalated  string `env:"SUBJECT_GRIEVANCE_ESCALATED" env-default:"Grievance Ticket Escalated"`
	GrievanceResolved   string `env:"SUBJECT_GRIEVANCE_RESOLVED" env-default:"Grievance Ticket Resolved"`
	KPIComplete         string `env:"SUBJECT_KPI_COMPLETE" env-default:"Appraisal Completed"`
	NewPolicyAdded      string `env:"SUBJECT_NEW_POLICY" env-default:"New Company Policy"`
	FeedbackRequested   string `env:"SUBJECT_FEEDBACK_REQUESTED" env-default:"Feedback Requested"`
	FeedbackCompleted   string `env:"SUBJECT_FEEDBACK_COMPLETED" env-default:"Feedback Completed"`
	NewRoleAdded        string `env:"SUBJECT_NEW_ROLE" env-default:"New Role Created"`
}

// ToMap returns the configured subjects keyed by template type name
func (s SubjectConfig) ToMap() map[string]string {
	return map[string]string{
		"birthday":             s.Birthday,
		"work_anniversary":     s.WorkAnniversary,
		"welcome":              s.Welcome,
		"resignation_applied":  s.ResignationApplied,
		"resignation_approved": s.ResignationApproved,
		"resignation_rejected": s.ResignationRejected,
		"leave_applied":        s.LeaveApplied,
		"leave_status":         s.LeaveStatus,
		"grievance_raised":     s.GrievanceRaised,
		"grievance_escalated":  s.GrievanceEscalated,
		"grievance_resolved":   s.GrievanceResolved,
		"kpi_complete":         s.KPIComplete,
		"new_policy_added":     s.NewPolicyAdded,
		"feedback_requested":   s.FeedbackRequested,
		"feedback_completed":   s.FeedbackCompleted,
		"new_role_added":       s.NewRoleAdded,
	}
}

// ToSubjects returns the configured subjects keyed by template type
func (s SubjectConfig) ToSubjects() map[emailtemplate.TemplateType]string {
	subjects := make(map[emailtemplate.TemplateType]string)
	for name, subject := range s.ToMap() {
		subjects[emailtemplate.TemplateType(name)] = subject
	}
	return subjects
}
