package jobinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/interviewmate/backend/marketplace/job"
	"github.com/interviewmate/backend/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{
		db: db,
	}
}

const jobColumns = `
	id, title, sector, job_type, location, vacancy, salary_min, salary_max,
	posted_at, deadline, description, requirements, responsibilities,
	created_by_email, created_at, updated_at
`

// Create creates a new job posting
func (r *PostgresJobRepository) Create(ctx context.Context, j *job.Job) error {
	query := `
		INSERT INTO jobs (
			id, title, sector, job_type, location, vacancy, salary_min, salary_max,
			posted_at, deadline, description, requirements, responsibilities,
			created_by_email, created_at, updated_at
		) VALUES (
			:id, :title, :sector, :job_type, :location, :vacancy, :salary_min, :salary_max,
			:posted_at, :deadline, :description, :requirements, :responsibilities,
			:created_by_email, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, j)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return job.ErrJobAlreadyExists()
		}
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// GetByID retrieves a job by ID
func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var j job.Job
	err := r.db.GetContext(ctx, &j, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrJobNotFound()
		}
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}

	return &j, nil
}

// List retrieves jobs filtered by sector/company/open-state with pagination
func (r *PostgresJobRepository) List(ctx context.Context, req job.ListJobsRequest) (*kernel.Paginated[job.Job], error) {
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

	if req.Sector != "" {
		addCond(fmt.Sprintf("sector = $%d", argCount), string(req.Sector))
	}
	if req.Company != "" {
		addCond(fmt.Sprintf("created_by_email = $%d", argCount), string(req.Company))
	}
	if req.OpenOnly {
		addCond(fmt.Sprintf("deadline >= $%d", argCount), time.Now())
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM jobs %s", where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+jobColumns+`
		FROM jobs
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argCount, argCount+1)
	args = append(args, req.Pagination.PageSize, req.Pagination.Offset())

	var jobs []job.Job
	if err := r.db.SelectContext(ctx, &jobs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return kernel.NewPaginated(jobs, req.Pagination, total), nil
}

// ListByCompany retrieves jobs owned by a company, newest first
func (r *PostgresJobRepository) ListByCompany(ctx context.Context, companyEmail kernel.Email, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM jobs WHERE created_by_email = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, string(companyEmail)); err != nil {
		return nil, fmt.Errorf("failed to count company jobs: %w", err)
	}

	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE created_by_email = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var jobs []job.Job
	if err := r.db.SelectContext(ctx, &jobs, query, string(companyEmail), pagination.PageSize, pagination.Offset()); err != nil {
		return nil, fmt.Errorf("failed to list company jobs: %w", err)
	}

	return kernel.NewPaginated(jobs, pagination, total), nil
}

// CountByCompany counts jobs owned by a company
func (r *PostgresJobRepository) CountByCompany(ctx context.Context, companyEmail kernel.Email) (int64, error) {
	query := `SELECT COUNT(*) FROM jobs WHERE created_by_email = $1`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, string(companyEmail)); err != nil {
		return 0, fmt.Errorf("failed to count company jobs: %w", err)
	}

	return count, nil
}

// Exists checks if a job exists by ID
func (r *PostgresJobRepository) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, string(id)); err != nil {
		return false, fmt.Errorf("failed to check job existence: %w", err)
	}

	return exists, nil
}
