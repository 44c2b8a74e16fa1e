package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// The projection structs below carry exactly the fields template authors
// may reference as {Token} placeholders. They are assembled on demand by
// the event data store and are never persisted. SenderName and SenderEmail
// are stamped by the composer from its injected identity so templates can
// sign off without any call-site pre-substitution.

// CelebrationData is a birthday or work-anniversary row, one per employee
type CelebrationData struct {
	EmployeeID            uuid.UUID
	FirstName             string
	LastName              string
	Department            string
	PersonalEmail         string
	WorkEmail             string
	ReportingManagerEmail string
	EventDate             time.Time
	YearsOfService        int
	ServiceYears          string // ordinal display, e.g. "5th", set by the composer
	SenderName            string
	SenderEmail           string
}

// WelcomeData backs the onboarding welcome notification
type WelcomeData struct {
	FirstName             string
	LastName              string
	Department            string
	Designation           string
	JoiningDate           time.Time
	PersonalEmail         string
	WorkEmail             string
	ReportingManagerEmail string
	SenderName            string
	SenderEmail           string
}

// ResignationData backs the resignation lifecycle notifications
type ResignationData struct {
	FirstName             string
	LastName              string
	Department            string
	ResignationDate       time.Time
	LastWorkingDay        *time.Time
	Reason                string
	Status                string // display string, set by the composer
	NoDueCertificate      string // "Granted"/"Not Granted", set by the composer
	FnFStatus             string // "Settled"/"Pending", set by the composer
	PersonalEmail         string
	WorkEmail             string
	ReportingManagerEmail string
	SenderName            string
	SenderEmail           string

	NoDueGranted bool
	FnFSettled   bool
	RawStatus    string
}

// LeaveData backs the leave lifecycle notifications
type LeaveData struct {
	FirstName             string
	LastName              string
	Department            string
	LeaveType             string // display string, set by the composer
	StartDate             time.Time
	EndDate               time.Time
	Days                  int
	Reason                string
	Status                string // display string, set by the composer
	ApproverComment       string
	PersonalEmail         string
	WorkEmail             string
	ReportingManagerEmail string
	SenderName            string
	SenderEmail           string

	RawLeaveType string
	RawStatus    string
}

// GrievanceData backs the grievance lifecycle notifications
type GrievanceData struct {
	FirstName             string
	LastName              string
	TicketNo              string
	Category              string
	Description           string
	Level                 int
	TicketStatus          string // display string, set by the composer
	Resolution            string
	RaisedOn              time.Time
	PersonalEmail         string
	WorkEmail             string
	ReportingManagerEmail string
	SenderName            string
	SenderEmail           string

	RawStatus string
}

// KPIData backs the appraisal completion notification
type KPIData struct {
	FirstName             string
	LastName              string
	PlanName              string
	Period                string
	Rating                string
	CompletedOn           *time.Time
	PersonalEmail         string
	WorkEmail             string
	ReportingManagerEmail string
	SenderName            string
	SenderEmail           string
}

// PolicyData backs the new-policy broadcast notification
type PolicyData struct {
	PolicyName    string
	DocumentName  string
	Description   string
	EffectiveDate time.Time
	SenderName    string
	SenderEmail   string
}

// FeedbackData backs the feedback lifecycle notifications
type FeedbackData struct {
	FirstName     string
	LastName      string
	Topic         string
	DueDate       time.Time
	PersonalEmail string
	WorkEmail     string
	SenderName    string
	SenderEmail   string
}

// RoleData backs the new-role broadcast notification
type RoleData struct {
	RoleName    string
	Description string
	SenderName  string
	SenderEmail string
}

// EventDataRepository assembles per-event data projections from the
// backing store. A (nil, nil) return means the business key resolved to
// nothing; the composer treats that as a skip, not a failure.
type EventDataRepository interface {
	GetBirthdayData(ctx context.Context) ([]CelebrationData, error)
	GetAnniversaryData(ctx context.Context) ([]CelebrationData, error)
	GetWelcomeData(ctx context.Context, employeeID uuid.UUID) (*WelcomeData, error)
	GetResignationData(ctx context.Context, resignationID uuid.UUID) (*ResignationData, error)
	GetLeaveData(ctx context.Context, leaveID uuid.UUID) (*LeaveData, error)
	GetGrievanceData(ctx context.Context, ticketNo string) (*GrievanceData, error)
	GetGrievanceOwnerEmails(ctx context.Context, ticketNo string) ([]string, error)
	GetKPICompleteData(ctx context.Context, planID uuid.UUID) (*KPIData, error)
	GetPolicyData(ctx context.Context, policyID uuid.UUID) (*PolicyData, error)
	GetFeedbackData(ctx context.Context, feedbackID uuid.UUID) (*FeedbackData, error)
	GetRoleData(ctx context.Context, roleID uuid.UUID) (*RoleData, error)
	GetEmailsByRole(ctx context.Context, role string) ([]string, error)
}
