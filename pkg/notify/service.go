package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tendant/simple-hrms/pkg/emailtemplate"
	"github.com/tendant/simple-hrms/pkg/notification"
)

// Result summarizes a compose call. Batch events aggregate across
// employees; single events report exactly one of the three counts.
type Result struct {
	Sent    int
	Skipped int
	Failed  int
}

func (r Result) add(o Result) Result {
	r.Sent += o.Sent
	r.Skipped += o.Skipped
	r.Failed += o.Failed
	return r
}

var (
	sentOne    = Result{Sent: 1}
	skippedOne = Result{Skipped: 1}
	failedOne  = Result{Failed: 1}
)

// HRAdminRole names the HR role whose members are copied on resignation
// notifications.
const HRAdminRole = "hr_admin"

// DefaultSubjects supplies a subject line per template type for
// templates stored without one.
var DefaultSubjects = map[emailtemplate.TemplateType]string{
	emailtemplate.TypeBirthday:            "Happy Birthday!",
	emailtemplate.TypeWorkAnniversary:     "Happy Work Anniversary!",
	emailtemplate.TypeWelcome:             "Welcome Aboard",
	emailtemplate.TypeResignationApplied:  "Resignation Received",
	emailtemplate.TypeResignationApproved: "Resignation Approved",
	emailtemplate.TypeResignationRejected: "Resignation Update",
	emailtemplate.TypeLeaveApplied:        "New Leave Request",
	emailtemplate.TypeLeaveStatus:         "Leave Request Update",
	emailtemplate.TypeGrievanceRaised:     "Grievance Raised",
	emailtemplate.TypeGrievanceEscalated:  "Grievance Escalated",
	emailtemplate.TypeGrievanceResolved:   "Grievance Resolved",
	emailtemplate.TypeKPIComplete:         "Your appraisal is complete",
	emailtemplate.TypeNewPolicyAdded:      "New Company Policy",
	emailtemplate.TypeFeedbackRequested:   "Feedback Requested",
	emailtemplate.TypeFeedbackCompleted:   "Feedback Completed",
	emailtemplate.TypeNewRoleAdded:        "New Role Added",
}

// TemplateStore is the slice of the template service the composer needs.
type TemplateStore interface {
	GetActiveByType(ctx context.Context, templateType emailtemplate.TemplateType) (emailtemplate.Template, error)
}

// Service composes and dispatches business-event notifications. Every
// event method resolves the active template for its type, assembles the
// event's data projection, substitutes placeholders and hands the message
// to the mailer. A missing template or missing event data yields a
// Skipped result rather than an error so callers can fire and forget.
type Service struct {
	templates TemplateStore
	data      EventDataRepository
	mailer    notification.Mailer
	sender    notification.SenderIdentity
	subjects  map[emailtemplate.TemplateType]string
}

func NewService(templates TemplateStore, data EventDataRepository, mailer notification.Mailer, sender notification.SenderIdentity, subjects map[emailtemplate.TemplateType]string) *Service {
	if subjects == nil {
		subjects = map[emailtemplate.TemplateType]string{}
	}
	return &Service{
		templates: templates,
		data:      data,
		mailer:    mailer,
		sender:    sender,
		subjects:  subjects,
	}
}

// activeTemplate resolves the single active template for a type. The
// second return is false when no active template exists.
func (s *Service) activeTemplate(ctx context.Context, templateType emailtemplate.TemplateType) (emailtemplate.Template, bool, error) {
	tmpl, err := s.templates.GetActiveByType(ctx, templateType)
	if err != nil {
		if errors.Is(err, emailtemplate.ErrTemplateNotFound) {
			slog.Warn("No active template for event, skipping notification", "type", templateType)
			return emailtemplate.Template{}, false, nil
		}
		return emailtemplate.Template{}, false, fmt.Errorf("failed to load template for %s: %w", templateType, err)
	}
	return tmpl, true, nil
}

// dispatch substitutes the template against data and sends one message.
// to carries the primary recipients derived from the event data; when
// empty the template's own To list stands in (broadcast events). ccExtra
// carries dynamically resolved addresses (reporting manager, grievance
// owners, HR role members) merged after the template's CC list with
// case-insensitive dedup. An empty To list after merging is a skip.
func (s *Service) dispatch(ctx context.Context, tmpl emailtemplate.Template, data any, to []string, ccExtra []string) (Result, error) {
	if len(to) == 0 {
		to = notification.SplitAddressList(tmpl.ToEmails)
	}
	to = notification.MergeAddresses(to)
	if len(to) == 0 {
		slog.Warn("Notification has no recipients, skipping", "type", tmpl.Type)
		return skippedOne, nil
	}

	subject := tmpl.Subject
	if subject == "" {
		subject = s.subjects[tmpl.Type]
	}

	req := notification.EmailRequest{
		To:        to,
		CC:        notification.MergeAddresses(notification.SplitAddressList(tmpl.CCEmails), ccExtra...),
		BCC:       notification.SplitAddressList(tmpl.BCCEmails),
		FromEmail: s.sender.FromEmail,
		FromName:  s.sender.FromName,
		Subject:   notification.Substitute(subject, data),
		Body:      notification.Substitute(tmpl.Body, data),
	}
	if err := s.mailer.SendEmail(ctx, req); err != nil {
		slog.Error("Failed to send notification", "type", tmpl.Type, "to", to, "err", err)
		return failedOne, fmt.Errorf("failed to send %s notification: %w", tmpl.Type, err)
	}
	slog.Info("Notification sent", "type", tmpl.Type, "to", to)
	return sentOne, nil
}

// NotifyBirthdays wishes every employee whose birthday is today. Each
// employee gets their own message; one failure does not stop the batch.
func (s *Service) NotifyBirthdays(ctx context.Context) (Result, error) {
	return s.notifyCelebrations(ctx, emailtemplate.TypeBirthday, s.data.GetBirthdayData)
}

// NotifyWorkAnniversaries congratulates every employee whose joining
// anniversary is today.
func (s *Service) NotifyWorkAnniversaries(ctx context.Context) (Result, error) {
	return s.notifyCelebrations(ctx, emailtemplate.TypeWorkAnniversary, s.data.GetAnniversaryData)
}

func (s *Service) notifyCelebrations(ctx context.Context, templateType emailtemplate.TemplateType, fetch func(context.Context) ([]CelebrationData, error)) (Result, error) {
	tmpl, ok, err := s.activeTemplate(ctx, templateType)
	if err != nil {
		return failedOne, err
	}
	if !ok {
		return skippedOne, nil
	}

	rows, err := fetch(ctx)
	if err != nil {
		return failedOne, fmt.Errorf("failed to load %s data: %w", templateType, err)
	}
	if len(rows) == 0 {
		return skippedOne, nil
	}

	var result Result
	var firstErr error
	for _, row := range rows {
		row.ServiceYears = OrdinalDisplay(row.YearsOfService)
		row.SenderName = s.sender.FromName
		row.SenderEmail = s.sender.FromEmail
		to := []string{notification.PrimaryAddress(row.PersonalEmail, row.WorkEmail)}
		r, err := s.dispatch(ctx, tmpl, row, to, nil)
		result = result.add(r)
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return result, firstErr
}

// NotifyWelcome greets a newly onboarded employee, copying their manager.
func (s *Service) NotifyWelcome(ctx context.Context, employeeID uuid.UUID) (Result, error) {
	tmpl, ok, err := s.activeTemplate(ctx, emailtemplate.TypeWelcome)
	if err != nil {
		return failedOne, err
	}
	if !ok {
		return skippedOne, nil
	}

	data, err := s.data.GetWelcomeData(ctx, employeeID)
	if err != nil {
		return failedOne, fmt.Errorf("failed to load welcome data: %w", err)
	}
	if data == nil {
		slog.Warn("No employee for welcome notification, skipping", "employeeID", employeeID)
		return skippedOne, nil
	}
	data.SenderName = s.sender.FromName
	data.SenderEmail = s.sender.FromEmail

	to := []string{notification.PrimaryAddress(data.PersonalEmail, data.WorkEmail)}
	return s.dispatch(ctx, tmpl, data, to, []string{data.ReportingManagerEmail})
}

// NotifyResignationApplied informs the employee and their manager that a
// resignation request has been recorded.
func (s *Service) NotifyResignationApplied(ctx context.Context, resignationID uuid.UUID) (Result, error) {
	return s.notifyResignation(ctx, emailtemplate.TypeResignationApplied, resignationID)
}

// NotifyResignationApproved informs the employee of approval, including
// clearance and settlement state.
func (s *Service) NotifyResignationApproved(ctx context.Context, resignationID uuid.UUID) (Result, error) {
	return s.notifyResignation(ctx, emailtemplate.TypeResignationApproved, resignationID)
}

// NotifyResignationRejected informs the employee of rejection.
func (s *Service) NotifyResignationRejected(ctx context.Context, resignationID uuid.UUID) (Result, error) {
	return s.notifyResignation(ctx, emailtemplate.TypeResignationRejected, resignationID)
}

func (s *Service) notifyResignation(ctx context.Context, templateType emailtemplate.TemplateType, resignationID uuid.UUID) (Result, error) {
	tmpl, ok, err := s.activeTemplate(ctx, templateType)
	if err != nil {
		return failedOne, err
	}
	if !ok {
		return skippedOne, nil
	}

	data, err := s.data.GetResignationData(ctx, resignationID)
	if err != nil {
		return failedOne, fmt.Errorf("failed to load resignation data: %w", err)
	}
	if data == nil {
		slog.Warn("No resignation for notification, skipping", "resignationID", resignationID)
		return skippedOne, nil
	}
	data.Status = ResignationStatusDisplay(data.RawStatus)
	data.NoDueCertificate = GrantedDisplay(data.NoDueGranted)
	data.FnFStatus = SettledDisplay(data.FnFSettled)
	data.SenderName = s.sender.FromName
	data.SenderEmail = s.sender.FromEmail

	hrEmails, err := s.data.GetEmailsByRole(ctx, HRAdminRole)
	if err != nil {
		return failedOne, fmt.Errorf("failed to load HR role emails: %w", err)
	}

	to := []string{notification.PrimaryAddress(data.PersonalEmail, data.WorkEmail)}
	cc := append([]string{data.ReportingManagerEmail}, hrEmails...)
	return s.dispatch(ctx, tmpl, data, to, cc)
}

// NotifyLeaveApplied tells the reporting manager a leave request awaits review.
func (s *Service) NotifyLeaveApplied(ctx context.Context, leaveID uuid.UUID) (Result, error) {
	tmpl, ok, err := s.activeTemplate(ctx, emailtemplate.TypeLeaveApplied)
	if err != nil {
		return failedOne, err
	}
	if !ok {
		return skippedOne, nil
	}

	data, err := s.loadLeaveData(ctx, leaveID)
	if err != nil {
		return failedOne, err
	}
	if data == nil {
		return skippedOne, nil
	}
	return s.dispatch(ctx, tmpl, data, []string{data.ReportingManagerEmail}, nil)
}

// NotifyLeaveStatus tells the employee their leave request was decided.
func (s *Service) NotifyLeaveStatus(ctx context.Context, leaveID uuid.UUID) (Result, error) {
	tmpl, ok, err := s.activeTemplate(ctx, emailtemplate.TypeLeaveStatus)
	if err != nil {
		return failedOne, err
	}
	if !ok {
		return skippedOne, nil
	}

	data, err := s.loadLeaveData(ctx, leaveID)
	if err != nil {
		return failedOne, err
	}
	if data == nil {
		return skippedOne, nil
	}
	to := []string{notification.PrimaryAddress(data.PersonalEmail, data.WorkEmail)}
	return s.dispatch(ctx, tmpl, data, to, []string{data.ReportingManagerEmail})
}

func (s *Service) loadLeaveData(ctx context.Context, leaveID uuid.UUID) (*LeaveData, error) {
	data, err := s.data.GetLeaveData(ctx, leaveID)
	if err != nil {
		return nil, fmt.Errorf("failed to load leave data: %w", err)
	}
	if data == nil {
		slog.Warn("No leave request for notification, skipping", "leaveID", leaveID)
		return nil, nil
	}
	data.LeaveType = LeaveTypeDisplay(data.RawLeaveType)
	data.Status = LeaveStatusDisplay(data.RawStatus)
	data.SenderName = s.sender.FromName
	data.SenderEmail = s.sender.FromEmail
	return data, nil
}

// NotifyGrievanceRaised acknowledges a new grievance to the employee and
// alerts the level-one owners.
func (s *Service) NotifyGrievanceRaised(ctx context.Context, ticketNo string) (Result, error) {
	return s.notifyGrievance(ctx, emailtemplate.TypeGrievanceRaised, ticketNo, true)
}

// NotifyGrievanceEscalated alerts the owners of the grievance's new level.
func (s *Service) NotifyGrievanceEscalated(ctx context.Context, ticketNo string) (Result, error) {
	return s.notifyGrievance(ctx, emailtemplate.TypeGrievanceEscalated, ticketNo, true)
}

// NotifyGrievanceResolved informs the employee of the resolution.
func (s *Service) NotifyGrievanceResolved(ctx context.Context, ticketNo string) (Result, error) {
	return s.notifyGrievance(ctx, emailtemplate.TypeGrievanceResolved, ticketNo, false)
}

func (s *Service) notifyGrievance(ctx context.Context, templateType emailtemplate.TemplateType, ticketNo string, includeOwners bool) (Result, error) {
	tmpl, ok, err := s.activeTemplate(ctx, templateType)
	if err != nil {
		return failedOne, err
	}
	if !ok {
		return skippedOne, nil
	}

	data, err := s.data.GetGrievanceData(ctx, ticketNo)
	if err != nil {
		return failedOne, fmt.Errorf("failed to load grievance data: %w", err)
	}
	if data == nil {
		slog.Warn("No grievance for notification, skipping", "ticketNo", ticketNo)
		return skippedOne, nil
	}
	data.TicketStatus = GrievanceStatusDisplay(data.RawStatus)
	data.SenderName = s.sender.FromName
	data.SenderEmail = s.sender.FromEmail

	to := []string{notification.PrimaryAddress(data.PersonalEmail, data.WorkEmail)}
	var cc []string
	if includeOwners {
		owners, err := s.data.GetGrievanceOwnerEmails(ctx, ticketNo)
		if err != nil {
			return failedOne, fmt.Errorf("failed to load grievance owners: %w", err)
		}
		cc = owners
	}
	return s.dispatch(ctx, tmpl, data, to, cc)
}

// NotifyKPIComplete informs the employee their appraisal plan is complete.
func (s *Service) NotifyKPIComplete(ctx context.Context, planID uuid.UUID) (Result, error) {
	tmpl, ok, err := s.activeTemplate(ctx, emailtemplate.TypeKPIComplete)
	if err != nil {
		return failedOne, err
	}
	if !ok {
		return skippedOne, nil
	}

	data, err := s.data.GetKPICompleteData(ctx, planID)
	if err != nil {
		return failedOne, fmt.Errorf("failed to load KPI data: %w", err)
	}
	if data == nil {
		slog.Warn("No KPI plan for notification, skipping", "planID", planID)
		return skippedOne, nil
	}
	data.SenderName = s.sender.FromName
	data.SenderEmail = s.sender.FromEmail

	to := []string{notification.PrimaryAddress(data.PersonalEmail, data.WorkEmail)}
	return s.dispatch(ctx, tmpl, data, to, nil)
}

// NotifyNewPolicyAdded broadcasts a policy announcement to the template's
// configured recipient list.
func (s *Service) NotifyNewPolicyAdded(ctx context.Context, policyID uuid.UUID) (Result, error) {
	tmpl, ok, err := s.activeTemplate(ctx, emailtemplate.TypeNewPolicyAdded)
	if err != nil {
		return failedOne, err
	}
	if !ok {
		return skippedOne, nil
	}

	data, err := s.data.GetPolicyData(ctx, policyID)
	if err != nil {
		return failedOne, fmt.Errorf("failed to load policy data: %w", err)
	}
	if data == nil {
		slog.Warn("No policy for notification, skipping", "policyID", policyID)
		return skippedOne, nil
	}
	data.SenderName = s.sender.FromName
	data.SenderEmail = s.sender.FromEmail

	return s.dispatch(ctx, tmpl, data, nil, nil)
}

// NotifyFeedbackRequested asks an employee for feedback on a topic.
func (s *Service) NotifyFeedbackRequested(ctx context.Context, feedbackID uuid.UUID) (Result, error) {
	return s.notifyFeedback(ctx, emailtemplate.TypeFeedbackRequested, feedbackID)
}

// NotifyFeedbackCompleted thanks an employee for submitted feedback.
func (s *Service) NotifyFeedbackCompleted(ctx context.Context, feedbackID uuid.UUID) (Result, error) {
	return s.notifyFeedback(ctx, emailtemplate.TypeFeedbackCompleted, feedbackID)
}

func (s *Service) notifyFeedback(ctx context.Context, templateType emailtemplate.TemplateType, feedbackID uuid.UUID) (Result, error) {
	tmpl, ok, err := s.activeTemplate(ctx, templateType)
	if err != nil {
		return failedOne, err
	}
	if !ok {
		return skippedOne, nil
	}

	data, err := s.data.GetFeedbackData(ctx, feedbackID)
	if err != nil {
		return failedOne, fmt.Errorf("failed to load feedback data: %w", err)
	}
	if data == nil {
		slog.Warn("No feedback request for notification, skipping", "feedbackID", feedbackID)
		return skippedOne, nil
	}
	data.SenderName = s.sender.FromName
	data.SenderEmail = s.sender.FromEmail

	to := []string{notification.PrimaryAddress(data.PersonalEmail, data.WorkEmail)}
	return s.dispatch(ctx, tmpl, data, to, nil)
}

// NotifyNewRoleAdded broadcasts a new HR role to the template's configured
// recipient list.
func (s *Service) NotifyNewRoleAdded(ctx context.Context, roleID uuid.UUID) (Result, error) {
	tmpl, ok, err := s.activeTemplate(ctx, emailtemplate.TypeNewRoleAdded)
	if err != nil {
		return failedOne, err
	}
	if !ok {
		return skippedOne, nil
	}

	data, err := s.data.GetRoleData(ctx, roleID)
	if err != nil {
		return failedOne, fmt.Errorf("failed to load role data: %w", err)
	}
	if data == nil {
		slog.Warn("No role for notification, skipping", "roleID", roleID)
		return skippedOne, nil
	}
	data.SenderName = s.sender.FromName
	data.SenderEmail = s.sender.FromEmail

	return s.dispatch(ctx, tmpl, data, nil, nil)
}
