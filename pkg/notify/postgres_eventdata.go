package notify

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresEventDataRepository implements EventDataRepository with direct
// queries against the HRMS schema. Lookups that resolve no row return
// (nil, nil) so the composer skips instead of failing.
type PostgresEventDataRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresEventDataRepository(pool *pgxpool.Pool) *PostgresEventDataRepository {
	return &PostgresEventDataRepository{pool: pool}
}

const celebrationColumns = `e.id, e.first_name, e.last_name, e.department,
	e.personal_email, e.work_email, e.reporting_manager_email`

func (r *PostgresEventDataRepository) GetBirthdayData(ctx context.Context) ([]CelebrationData, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+celebrationColumns+`, e.date_of_birth,
			EXTRACT(YEAR FROM AGE(CURRENT_DATE, e.date_of_birth))::int
		 FROM employee e
		 WHERE e.status = 'active'
		   AND EXTRACT(MONTH FROM e.date_of_birth) = EXTRACT(MONTH FROM CURRENT_DATE)
		   AND EXTRACT(DAY FROM e.date_of_birth) = EXTRACT(DAY FROM CURRENT_DATE)
		 ORDER BY e.first_name, e.last_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCelebrations(rows)
}

func (r *PostgresEventDataRepository) GetAnniversaryData(ctx context.Context) ([]CelebrationData, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+celebrationColumns+`, e.joining_date,
			EXTRACT(YEAR FROM AGE(CURRENT_DATE, e.joining_date))::int
		 FROM employee e
		 WHERE e.status = 'active'
		   AND e.joining_date < CURRENT_DATE
		   AND EXTRACT(MONTH FROM e.joining_date) = EXTRACT(MONTH FROM CURRENT_DATE)
		   AND EXTRACT(DAY FROM e.joining_date) = EXTRACT(DAY FROM CURRENT_DATE)
		 ORDER BY e.first_name, e.last_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCelebrations(rows)
}

func scanCelebrations(rows pgx.Rows) ([]CelebrationData, error) {
	result := []CelebrationData{}
	for rows.Next() {
		var c CelebrationData
		err := rows.Scan(&c.EmployeeID, &c.FirstName, &c.LastName, &c.Department,
			&c.PersonalEmail, &c.WorkEmail, &c.ReportingManagerEmail,
			&c.EventDate, &c.YearsOfService)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *PostgresEventDataRepository) GetWelcomeData(ctx context.Context, employeeID uuid.UUID) (*WelcomeData, error) {
	var d WelcomeData
	err := r.pool.QueryRow(ctx,
		`SELECT first_name, last_name, department, designation, joining_date,
			personal_email, work_email, reporting_manager_email
		 FROM employee WHERE id = $1`, employeeID).
		Scan(&d.FirstName, &d.LastName, &d.Department, &d.Designation, &d.JoiningDate,
			&d.PersonalEmail, &d.WorkEmail, &d.ReportingManagerEmail)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PostgresEventDataRepository) GetResignationData(ctx context.Context, resignationID uuid.UUID) (*ResignationData, error) {
	var d ResignationData
	err := r.pool.QueryRow(ctx,
		`SELECT e.first_name, e.last_name, e.department,
			r.resignation_date, r.last_working_day, r.reason, r.status,
			r.no_due_granted, r.fnf_settled,
			e.personal_email, e.work_email, e.reporting_manager_email
		 FROM resignation r
		 JOIN employee e ON e.id = r.employee_id
		 WHERE r.id = $1`, resignationID).
		Scan(&d.FirstName, &d.LastName, &d.Department,
			&d.ResignationDate, &d.LastWorkingDay, &d.Reason, &d.RawStatus,
			&d.NoDueGranted, &d.FnFSettled,
			&d.PersonalEmail, &d.WorkEmail, &d.ReportingManagerEmail)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PostgresEventDataRepository) GetLeaveData(ctx context.Context, leaveID uuid.UUID) (*LeaveData, error) {
	var d LeaveData
	err := r.pool.QueryRow(ctx,
		`SELECT e.first_name, e.last_name, e.department,
			l.leave_type, l.start_date, l.end_date, l.days, l.reason, l.status,
			COALESCE(l.approver_comment, ''),
			e.personal_email, e.work_email, e.reporting_manager_email
		 FROM leave_request l
		 JOIN employee e ON e.id = l.employee_id
		 WHERE l.id = $1`, leaveID).
		Scan(&d.FirstName, &d.LastName, &d.Department,
			&d.RawLeaveType, &d.StartDate, &d.EndDate, &d.Days, &d.Reason, &d.RawStatus,
			&d.ApproverComment,
			&d.PersonalEmail, &d.WorkEmail, &d.ReportingManagerEmail)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PostgresEventDataRepository) GetGrievanceData(ctx context.Context, ticketNo string) (*GrievanceData, error) {
	var d GrievanceData
	err := r.pool.QueryRow(ctx,
		`SELECT e.first_name, e.last_name, g.ticket_no, g.category, g.description,
			g.level, g.status, COALESCE(g.resolution, ''), g.raised_on,
			e.personal_email, e.work_email, e.reporting_manager_email
		 FROM grievance g
		 JOIN employee e ON e.id = g.employee_id
		 WHERE g.ticket_no = $1`, ticketNo).
		Scan(&d.FirstName, &d.LastName, &d.TicketNo, &d.Category, &d.Description,
			&d.Level, &d.RawStatus, &d.Resolution, &d.RaisedOn,
			&d.PersonalEmail, &d.WorkEmail, &d.ReportingManagerEmail)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetGrievanceOwnerEmails returns the owner addresses for the grievance's
// current escalation level.
func (r *PostgresEventDataRepository) GetGrievanceOwnerEmails(ctx context.Context, ticketNo string) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT o.email
		 FROM grievance_owner o
		 JOIN grievance g ON g.level = o.level
		 WHERE g.ticket_no = $1
		 ORDER BY o.email`, ticketNo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	emails := []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}

func (r *PostgresEventDataRepository) GetKPICompleteData(ctx context.Context, planID uuid.UUID) (*KPIData, error) {
	var d KPIData
	err := r.pool.QueryRow(ctx,
		`SELECT e.first_name, e.last_name, k.plan_name, k.period,
			COALESCE(k.rating, ''), k.completed_on,
			e.personal_email, e.work_email, e.reporting_manager_email
		 FROM kpi_plan k
		 JOIN employee e ON e.id = k.employee_id
		 WHERE k.id = $1`, planID).
		Scan(&d.FirstName, &d.LastName, &d.PlanName, &d.Period,
			&d.Rating, &d.CompletedOn,
			&d.PersonalEmail, &d.WorkEmail, &d.ReportingManagerEmail)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PostgresEventDataRepository) GetPolicyData(ctx context.Context, policyID uuid.UUID) (*PolicyData, error) {
	var d PolicyData
	err := r.pool.QueryRow(ctx,
		`SELECT policy_name, document_name, COALESCE(description, ''), effective_date
		 FROM company_policy WHERE id = $1`, policyID).
		Scan(&d.PolicyName, &d.DocumentName, &d.Description, &d.EffectiveDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PostgresEventDataRepository) GetFeedbackData(ctx context.Context, feedbackID uuid.UUID) (*FeedbackData, error) {
	var d FeedbackData
	err := r.pool.QueryRow(ctx,
		`SELECT e.first_name, e.last_name, f.topic, f.due_date,
			e.personal_email, e.work_email
		 FROM feedback_request f
		 JOIN employee e ON e.id = f.employee_id
		 WHERE f.id = $1`, feedbackID).
		Scan(&d.FirstName, &d.LastName, &d.Topic, &d.DueDate,
			&d.PersonalEmail, &d.WorkEmail)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PostgresEventDataRepository) GetRoleData(ctx context.Context, roleID uuid.UUID) (*RoleData, error) {
	var d RoleData
	err := r.pool.QueryRow(ctx,
		`SELECT name, COALESCE(description, '') FROM hr_role WHERE id = $1`, roleID).
		Scan(&d.RoleName, &d.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetEmailsByRole returns the work addresses of active employees holding
// the named HR role.
func (r *PostgresEventDataRepository) GetEmailsByRole(ctx context.Context, role string) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT e.work_email
		 FROM employee e
		 JOIN employee_role er ON er.employee_id = e.id
		 JOIN hr_role hr ON hr.id = er.role_id
		 WHERE e.status = 'active' AND hr.name = $1
		 ORDER BY e.work_email`, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	emails := []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}
