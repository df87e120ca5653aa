package applicationinfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/interviewmate/backend/marketplace/application"
	"github.com/interviewmate/backend/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresApplicationRepository implements application.Repository using PostgreSQL
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicationRepository creates a new PostgreSQL application repository
func NewPostgresApplicationRepository(db *sqlx.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{
		db: db,
	}
}

const applicationColumns = `
	id, job_id, candidate_uid, candidate_email, candidate_name, candidate_phone,
	resume_url, job_title, company_name, company_email, sector, salary_min,
	salary_max, status, applied_at, created_at, updated_at
`

// Create inserts a new application. The unique index on (job_id, candidate_uid)
// rejects duplicates regardless of races.
func (r *PostgresApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	query := `
		INSERT INTO applications (
			id, job_id, candidate_uid, candidate_email, candidate_name, candidate_phone,
			resume_url, job_title, company_name, company_email, sector, salary_min,
			salary_max, status, applied_at, created_at, updated_at
		) VALUES (
			:id, :job_id, :candidate_uid, :candidate_email, :candidate_name, :candidate_phone,
			:resume_url, :job_title, :company_name, :company_email, :sector, :salary_min,
			:salary_max, :status, :applied_at, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, app)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return application.ErrApplicationAlreadyExists()
		}
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	var app application.Application
	err := r.db.GetContext(ctx, &app, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrApplicationNotFound()
		}
		return nil, fmt.Errorf("failed to get application by id: %w", err)
	}

	return &app, nil
}

// List retrieves applications matching the optional filters, newest first
func (r *PostgresApplicationRepository) List(ctx context.Context, req application.ListApplicationsRequest) ([]application.Application, error) {
	where := ""
	args := []interface{}{}
	argCount := 1

	addCond := func(cond string, val interface{}) {
		if where == "" {
			where = "WHERE " + cond
		} else {
			where += " AND " + cond
		}
		args = append(args, val)
		argCount++
	}

	if !req.CandidateUID.IsEmpty() {
		addCond(fmt.Sprintf("candidate_uid = $%d", argCount), req.CandidateUID.String())
	}
	if !req.JobID.IsEmpty() {
		addCond(fmt.Sprintf("job_id = $%d", argCount), req.JobID.String())
	}

	query := fmt.Sprintf(`
		SELECT `+applicationColumns+`
		FROM applications
		%s
		ORDER BY applied_at DESC
	`, where)

	apps := []application.Application{}
	if err := r.db.SelectContext(ctx, &apps, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return apps, nil
}

// ListByCompany retrieves all applications against a company's jobs
func (r *PostgresApplicationRepository) ListByCompany(ctx context.Context, companyEmail kernel.Email) ([]application.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE company_email = $1
		ORDER BY applied_at DESC
	`

	apps := []application.Application{}
	if err := r.db.SelectContext(ctx, &apps, query, string(companyEmail)); err != nil {
		return nil, fmt.Errorf("failed to list company applications: %w", err)
	}

	return apps, nil
}

// ListByCandidate retrieves a candidate's applications, newest first, paginated
func (r *PostgresApplicationRepository) ListByCandidate(ctx context.Context, candidateUID kernel.ExternalUID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM applications WHERE candidate_uid = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, candidateUID.String()); err != nil {
		return nil, fmt.Errorf("failed to count candidate applications: %w", err)
	}

	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE candidate_uid = $1
		ORDER BY applied_at DESC
		LIMIT $2 OFFSET $3
	`

	apps := []application.Application{}
	if err := r.db.SelectContext(ctx, &apps, query, candidateUID.String(), pagination.PageSize, pagination.Offset()); err != nil {
		return nil, fmt.Errorf("failed to list candidate applications: %w", err)
	}

	return kernel.NewPaginated(apps, pagination, total), nil
}

// UpdateStatus persists a status transition
func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id kernel.ApplicationID, status application.ApplicationStatus) error {
	query := `UPDATE applications SET status = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, string(status), string(id))
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return application.ErrApplicationNotFound()
	}

	return nil
}

// DeleteCascade removes the application and the company's shortlist entries
// pointing at it in one transaction, so a crash never strands a dangling
// shortlist row.
func (r *PostgresApplicationRepository) DeleteCascade(ctx context.Context, id kernel.ApplicationID, companyEmail kernel.Email) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM shortlists WHERE application_id = $1 AND company_email = $2`,
		string(id), string(companyEmail),
	); err != nil {
		return fmt.Errorf("failed to delete shortlist entries: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return application.ErrApplicationNotFound()
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	return nil
}

// CountByJob returns application counts grouped by job for the given job IDs
func (r *PostgresApplicationRepository) CountByJob(ctx context.Context, jobIDs []kernel.JobID) (map[kernel.JobID]int64, error) {
	counts := make(map[kernel.JobID]int64, len(jobIDs))
	if len(jobIDs) == 0 {
		return counts, nil
	}

	ids := make([]string, 0, len(jobIDs))
	for _, id := range jobIDs {
		ids = append(ids, id.String())
	}

	query := `
		SELECT job_id, COUNT(*) AS total
		FROM applications
		WHERE job_id = ANY($1)
		GROUP BY job_id
	`

	rows, err := r.db.QueryxContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to count applications by job: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var jobID string
		var total int64
		if err := rows.Scan(&jobID, &total); err != nil {
			return nil, fmt.Errorf("failed to scan application count: %w", err)
		}
		counts[kernel.JobID(jobID)] = total
	}

	return counts, rows.Err()
}
