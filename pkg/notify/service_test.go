package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/simple-hrms/pkg/emailtemplate"
	"github.com/tendant/simple-hrms/pkg/notification"
)

var testSender = notification.SenderIdentity{
	FromEmail: "hr@example.com",
	FromName:  "HR Team",
}

func setupNotifyService(t *testing.T) (*Service, *emailtemplate.TemplateService, *InMemoryEventDataRepository, *notification.MockMailer) {
	t.Helper()
	templates := emailtemplate.NewTemplateService(emailtemplate.NewInMemoryTemplateRepository())
	data := NewInMemoryEventDataRepository()
	mailer := &notification.MockMailer{}
	svc := NewService(templates, data, mailer, testSender, map[emailtemplate.TemplateType]string{
		emailtemplate.TypeKPIComplete: "Your appraisal is complete",
	})
	return svc, templates, data, mailer
}

func activateTemplate(t *testing.T, templates *emailtemplate.TemplateService, params emailtemplate.CreateTemplateParams) emailtemplate.Template {
	t.Helper()
	tmpl, err := templates.CreateTemplate(context.Background(), params)
	require.NoError(t, err)
	require.NoError(t, templates.ChangeStatus(context.Background(), tmpl.ID, emailtemplate.StatusActive))
	return tmpl
}

func TestNotifyWelcome(t *testing.T) {
	svc, templates, data, mailer := setupNotifyService(t)

	activateTemplate(t, templates, emailtemplate.CreateTemplateParams{
		Type:     emailtemplate.TypeWelcome,
		Subject:  "Welcome aboard, {FirstName}!",
		Body:     "<p>Dear {FirstName} {LastName}, welcome to {Department}. Regards, {SenderName}</p>",
		CCEmails: "hrops@example.com",
	})

	employeeID := uuid.New()
	data.Welcomes[employeeID] = &WelcomeData{
		FirstName:             "Priya",
		LastName:              "Sharma",
		Department:            "Engineering",
		JoiningDate:           time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
		PersonalEmail:         "priya@gmail.com",
		WorkEmail:             "priya.sharma@example.com",
		ReportingManagerEmail: "mgr@example.com",
	}

	result, err := svc.NotifyWelcome(context.Background(), employeeID)
	require.NoError(t, err)
	assert.Equal(t, Result{Sent: 1}, result)

	require.Len(t, mailer.SentRequests, 1)
	sent := mailer.SentRequests[0]
	assert.Equal(t, []string{"priya@gmail.com"}, sent.To)
	assert.Equal(t, []string{"hrops@example.com", "mgr@example.com"}, sent.CC)
	assert.Equal(t, "Welcome aboard, Priya!", sent.Subject)
	assert.Contains(t, sent.Body, "Dear Priya Sharma, welcome to Engineering")
	assert.Contains(t, sent.Body, "Regards, HR Team")
	assert.Equal(t, "hr@example.com", sent.FromEmail)
}

func TestNotifyWelcomeDedupesManagerAgainstTemplateCC(t *testing.T) {
	svc, templates, data, mailer := setupNotifyService(t)

	activateTemplate(t, templates, emailtemplate.CreateTemplateParams{
		Type:     emailtemplate.TypeWelcome,
		Subject:  "Welcome",
		Body:     "Hi {FirstName}",
		CCEmails: "hr@co.com;hr@co.com ;",
	})

	employeeID := uuid.New()
	data.Welcomes[employeeID] = &WelcomeData{
		FirstName:             "Asha",
		PersonalEmail:         "asha@gmail.com",
		ReportingManagerEmail: "MGR@co.com",
	}

	_, err := svc.NotifyWelcome(context.Background(), employeeID)
	require.NoError(t, err)
	require.Len(t, mailer.SentRequests, 1)
	sent := mailer.SentRequests[0]
	assert.Equal(t, []string{"asha@gmail.com"}, sent.To)
	assert.Equal(t, []string{"hr@co.com", "MGR@co.com"}, sent.CC)
}

func TestNotifyMissingTemplateSkips(t *testing.T) {
	svc, _, data, mailer := setupNotifyService(t)

	planID := uuid.New()
	data.KPIPlans[planID] = &KPIData{
		FirstName:     "Arun",
		PlanName:      "FY26 Goals",
		PersonalEmail: "arun@gmail.com",
	}

	result, err := svc.NotifyKPIComplete(context.Background(), planID)
	require.NoError(t, err)
	assert.Equal(t, Result{Skipped: 1}, result)
	assert.Zero(t, mailer.Attempts)
}

func TestNotifyMissingDataSkips(t *testing.T) {
	svc, templates, _, mailer := setupNotifyService(t)

	activateTemplate(t, templates, emailtemplate.CreateTemplateParams{
		Type:    emailtemplate.TypeWelcome,
		Subject: "Welcome",
		Body:    "Hi {FirstName}",
	})

	result, err := svc.NotifyWelcome(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, Result{Skipped: 1}, result)
	assert.Zero(t, mailer.Attempts)
}

func TestNotifyMailerFailure(t *testing.T) {
	svc, templates, data, mailer := setupNotifyService(t)
	mailer.Errs = []error{errors.New("smtp unavailable")}

	activateTemplate(t, templates, emailtemplate.CreateTemplateParams{
		Type:    emailtemplate.TypeWelcome,
		Subject: "Welcome",
		Body:    "Hi {FirstName}",
	})
	employeeID := uuid.New()
	data.Welcomes[employeeID] = &WelcomeData{FirstName: "Asha", PersonalEmail: "asha@gmail.com"}

	result, err := svc.NotifyWelcome(context.Background(), employeeID)
	assert.Error(t, err)
	assert.Equal(t, Result{Failed: 1}, result)
	assert.Equal(t, 1, mailer.Attempts)
	assert.Empty(t, mailer.SentRequests)
}

func TestNotifyBirthdaysBatch(t *testing.T) {
	svc, templates, data, mailer := setupNotifyService(t)

	activateTemplate(t, templates, emailtemplate.CreateTemplateParams{
		Type:    emailtemplate.TypeBirthday,
		Subject: "Happy Birthday {FirstName}!",
		Body:    "Many happy returns, {FirstName}.",
	})

	data.Birthdays = []CelebrationData{
		{FirstName: "Ravi", PersonalEmail: "ravi@gmail.com"},
		{FirstName: "Meena", WorkEmail: "meena@example.com"},
	}

	result, err := svc.NotifyBirthdays(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{Sent: 2}, result)

	require.Len(t, mailer.SentRequests, 2)
	assert.Equal(t, "Happy Birthday Ravi!", mailer.SentRequests[0].Subject)
	assert.Equal(t, []string{"meena@example.com"}, mailer.SentRequests[1].To)
}

func TestNotifyBirthdaysContinuesAfterFailure(t *testing.T) {
	svc, templates, data, mailer := setupNotifyService(t)
	mailer.Errs = []error{errors.New("smtp unavailable")}

	activateTemplate(t, templates, emailtemplate.CreateTemplateParams{
		Type:    emailtemplate.TypeBirthday,
		Subject: "Happy Birthday {FirstName}!",
		Body:    "Many happy returns.",
	})

	data.Birthdays = []CelebrationData{
		{FirstName: "Ravi", PersonalEmail: "ravi@gmail.com"},
		{FirstName: "Meena", PersonalEmail: "meena@gmail.com"},
	}

	result, err := svc.NotifyBirthdays(context.Background())
	assert.Error(t, err)
	assert.Equal(t, Result{Sent: 1, Failed: 1}, result)
	require.Len(t, mailer.SentRequests, 1)
	assert.Equal(t, []string{"meena@gmail.com"}, mailer.SentRequests[0].To)
}

func TestNotifyWorkAnniversaryOrdinal(t *testing.T) {
	svc, templates, data, mailer := setupNotifyService(t)

	activateTemplate(t, templates, emailtemplate.CreateTemplateParams{
		Type:    emailtemplate.TypeWorkAnniversary,
		Subject: "Congratulations on your {ServiceYears} anniversary!",
		Body:    "{FirstName}, thank you for {ServiceYears} great years.",
	})

	data.Anniversaries = []CelebrationData{
		{FirstName: "Dev", PersonalEmail: "dev@gmail.com", YearsOfService: 3},
	}

	_, err := svc.NotifyWorkAnniversaries(context.Background())
	require.NoError(t, err)
	require.Len(t, mailer.SentRequests, 1)
	assert.Equal(t, "Congratulations on your 3rd anniversary!", mailer.SentRequests[0].Subject)
}

func TestNotifyLeaveApplied(t *testing.T) {
	svc, templates, data, mailer := setupNotifyService(t)

	activateTemplate(t, templates, emailtemplate.CreateTemplateParams{
		Type:    emailtemplate.TypeLeaveApplied,
		Subject: "Leave request from {FirstName} {LastName}",
		Body:    "{FirstName} requested {LeaveType} from {StartDate} to {EndDate} ({Days} days).",
	})

	leaveID := uuid.New()
	data.Leaves[leaveID] = &LeaveData{
		FirstName:             "Sunil",
		LastName:              "Rao",
		RawLeaveType:          "sick",
		RawStatus:             "pending",
		StartDate:             time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:               time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		Days:                  3,
		PersonalEmail:         "sunil@gmail.com",
		ReportingManagerEmail: "mgr@example.com",
	}

	result, err := svc.NotifyLeaveApplied(context.Background(), leaveID)
	require.NoError(t, err)
	assert.Equal(t, Result{Sent: 1}, result)

	require.Len(t, mailer.SentRequests, 1)
	sent := mailer.SentRequests[0]
	assert.Equal(t, []string{"mgr@example.com"}, sent.To)
	assert.Contains(t, sent.Body, "Sick Leave from 09/01/2026 to 09/03/2026 (3 days)")
}

func TestNotifyLeaveStatusGoesToEmployee(t *testing.T) {
	svc, templates, data, mailer := setupNotifyService(t)

	activateTemplate(t, templates, emailtemplate.CreateTemplateParams{
		Type:    emailtemplate.TypeLeaveStatus,
		Subject: "Your leave request was {Status}",
		Body:    "Status: {Status}. Comment: {ApproverComment}",
	})

	leaveID := uuid.New()
	data.Leaves[leaveID] = &LeaveData{
		FirstName:             "Sunil",
		RawLeaveType:          "casual",
		RawStatus:             "approved",
		ApproverComment:       "Enjoy",
		PersonalEmail:         "sunil@gmail.com",
		ReportingManagerEmail: "mgr@example.com",
	}

	_, err := svc.NotifyLeaveStatus(context.Background(), leaveID)
	require.NoError(t, err)
	require.Len(t, mailer.SentRequests, 1)
	assert.Equal(t, "Your leave request was Approved", mailer.SentRequests[0].Subject)
	assert.Equal(t, []string{"sunil@gmail.com"}, mailer.SentRequests[0].To)
	assert.Equal(t, []string{"mgr@example.com"}, mailer.SentRequests[0].CC)
}

func TestNotifyGrievanceEscalatedIncludesOwners(t *testing.T) {
	svc, templates, data, mailer := setupNotifyService(t)

	activateTemplate(t, templates, emailtemplate.CreateTemplateParams{
		Type:    emailtemplate.TypeGrievanceEscalated,
		Subject: "Grievance {TicketNo} escalated to level {Level}",
		Body:    "Category: {Category}. Status: {TicketStatus}.",
	})

	data.Grievances["GRV-1042"] = &GrievanceData{
		FirstName:     "Nisha",
		TicketNo:      "GRV-1042",
		Category:      "Payroll",
		Level:         2,
		RawStatus:     "escalated",
		PersonalEmail: "nisha@gmail.com",
	}
	data.OwnerEmails["GRV-1042"] = []string{"lead@example.com", "hrhead@example.com"}

	_, err := svc.NotifyGrievanceEscalated(context.Background(), "GRV-1042")
	require.NoError(t, err)
	require.Len(t, mailer.SentRequests, 1)
	sent := mailer.SentRequests[0]
	assert.Equal(t, []string{"nisha@gmail.com"}, sent.To)
	assert.Equal(t, []string{"lead@example.com", "hrhead@example.com"}, sent.CC)
	assert.Equal(t, "Grievance GRV-1042 escalated to level 2", sent.Subject)
	assert.Contains(t, sent.Body, "Status: Escalated")
}

func TestNotifyResignationApprovedClearances(t *testing.T) {
	svc, templates, data, mailer := setupNotifyService(t)

	activateTemplate(t, templates, emailtemplate.CreateTemplateParams{
		Type:    emailtemplate.TypeResignationApproved,
		Subject: "Resignation {Status}",
		Body:    "No due certificate: {NoDueCertificate}. Full and final: {FnFStatus}. Last working day: {LastWorkingDay}.",
	})

	lwd := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	resignationID := uuid.New()
	data.Resignations[resignationID] = &ResignationData{
		FirstName:      "Kiran",
		RawStatus:      "approved",
		NoDueGranted:   true,
		FnFSettled:     false,
		LastWorkingDay: &lwd,
		PersonalEmail:  "kiran@gmail.com",
	}

	_, err := svc.NotifyResignationApproved(context.Background(), resignationID)
	require.NoError(t, err)
	require.Len(t, mailer.SentRequests, 1)
	sent := mailer.SentRequests[0]
	assert.Equal(t, "Resignation Approved", sent.Subject)
	assert.Contains(t, sent.Body, "No due certificate: Granted")
	assert.Contains(t, sent.Body, "Full and final: Pending")
	assert.Contains(t, sent.Body, "Last working day: 10/15/2026")
}

func TestNotifyResignationAppliedCopiesManagerAndHRTeam(t *testing.T) {
	svc, templates, data, mailer := setupNotifyService(t)

	activateTemplate(t, templates, emailtemplate.CreateTemplateParams{
		Type:     emailtemplate.TypeResignationApplied,
		Subject:  "Resignation from {FirstName}",
		Body:     "Reason: {Reason}",
		CCEmails: "hrops@example.com",
	})

	resignationID := uuid.New()
	data.Resignations[resignationID] = &ResignationData{
		FirstName:             "Kiran",
		RawStatus:             "applied",
		Reason:                "Relocation",
		PersonalEmail:         "kiran@gmail.com",
		ReportingManagerEmail: "mgr@example.com",
	}
	data.RoleEmails[HRAdminRole] = []string{"hrhead@example.com", "hrops@example.com"}

	_, err := svc.NotifyResignationApplied(context.Background(), resignationID)
	require.NoError(t, err)
	require.Len(t, mailer.SentRequests, 1)
	sent := mailer.SentRequests[0]
	assert.Equal(t, []string{"kiran@gmail.com"}, sent.To)
	assert.Equal(t, []string{"hrops@example.com", "mgr@example.com", "hrhead@example.com"}, sent.CC)
}

func TestNotifyPolicyBroadcastUsesTemplateRecipients(t *testing.T) {
	svc, templates, data, mailer := setupNotifyService(t)

	activateTemplate(t, templates, emailtemplate.CreateTemplateParams{
		Type:     emailtemplate.TypeNewPolicyAdded,
		Subject:  "New policy: {PolicyName}",
		Body:     "{PolicyName} takes effect on {EffectiveDate}.",
		ToEmails: "all-staff@example.com; all-Staff@example.com ;managers@example.com",
	})

	policyID := uuid.New()
	data.Policies[policyID] = &PolicyData{
		PolicyName:    "Remote Work Policy",
		EffectiveDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	}

	_, err := svc.NotifyNewPolicyAdded(context.Background(), policyID)
	require.NoError(t, err)
	require.Len(t, mailer.SentRequests, 1)
	sent := mailer.SentRequests[0]
	assert.Equal(t, []string{"all-staff@example.com", "managers@example.com"}, sent.To)
	assert.Equal(t, "New policy: Remote Work Policy", sent.Subject)
	assert.Contains(t, sent.Body, "09/15/2026")
}

func TestNotifyPolicyBroadcastNoRecipientsSkips(t *testing.T) {
	svc, templates, data, mailer := setupNotifyService(t)

	activateTemplate(t, templates, emailtemplate.CreateTemplateParams{
		Type:    emailtemplate.TypeNewPolicyAdded,
		Subject: "New policy: {PolicyName}",
		Body:    "Please review.",
	})

	policyID := uuid.New()
	data.Policies[policyID] = &PolicyData{PolicyName: "Travel Policy"}

	result, err := svc.NotifyNewPolicyAdded(context.Background(), policyID)
	require.NoError(t, err)
	assert.Equal(t, Result{Skipped: 1}, result)
	assert.Zero(t, mailer.Attempts)
}

func TestNotifySubjectFallback(t *testing.T) {
	// Seed a subjectless template through the repository directly; the
	// service layer rejects empty subjects on create.
	repo := emailtemplate.NewInMemoryTemplateRepository()
	tmpl, err := repo.CreateTemplate(context.Background(), emailtemplate.CreateTemplateParams{
		Type:   emailtemplate.TypeKPIComplete,
		Body:   "Your plan {PlanName} is complete.",
		Status: emailtemplate.StatusActive,
	})
	require.NoError(t, err)
	require.Empty(t, tmpl.Subject)

	data := NewInMemoryEventDataRepository()
	planID := uuid.New()
	data.KPIPlans[planID] = &KPIData{
		FirstName:     "Arun",
		PlanName:      "FY26 Goals",
		PersonalEmail: "arun@gmail.com",
	}

	mailer := &notification.MockMailer{}
	svc := NewService(emailtemplate.NewTemplateService(repo), data, mailer, testSender,
		map[emailtemplate.TemplateType]string{
			emailtemplate.TypeKPIComplete: "Your appraisal is complete",
		})

	_, err = svc.NotifyKPIComplete(context.Background(), planID)
	require.NoError(t, err)
	require.Len(t, mailer.SentRequests, 1)
	assert.Equal(t, "Your appraisal is complete", mailer.SentRequests[0].Subject)
}

func TestOrdinalDisplay(t *testing.T) {
	cases := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th",
		11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 23: "23rd",
		101: "101st", 111: "111th",
	}
	for n, want := range cases {
		assert.Equal(t, want, OrdinalDisplay(n), "n=%d", n)
	}
}
