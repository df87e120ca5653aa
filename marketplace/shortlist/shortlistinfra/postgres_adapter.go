package shortlistinfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/interviewmate/backend/marketplace/shortlist"
	"github.com/interviewmate/backend/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresShortlistRepository implements shortlist.Repository using PostgreSQL
type PostgresShortlistRepository struct {
	db *sqlx.DB
}

// NewPostgresShortlistRepository creates a new PostgreSQL shortlist repository
func NewPostgresShortlistRepository(db *sqlx.DB) *PostgresShortlistRepository {
	return &PostgresShortlistRepository{
		db: db,
	}
}

const shortlistColumns = `
	id, company_email, application_id, job_id, candidate_email, candidate_name, status, created_at
`

// Create inserts a shortlist entry
func (r *PostgresShortlistRepository) Create(ctx context.Context, entry *shortlist.Shortlist) error {
	query := `
		INSERT INTO shortlists (
			id, company_email, application_id, job_id, candidate_email, candidate_name, status, created_at
		) VALUES (
			:id, :company_email, :application_id, :job_id, :candidate_email, :candidate_name, :status, :created_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, entry)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return shortlist.ErrShortlistAlreadyExists()
		}
		return fmt.Errorf("failed to create shortlist entry: %w", err)
	}

	return nil
}

// GetByID retrieves a shortlist entry by ID
func (r *PostgresShortlistRepository) GetByID(ctx context.Context, id kernel.ShortlistID) (*shortlist.Shortlist, error) {
	query := `SELECT ` + shortlistColumns + ` FROM shortlists WHERE id = $1`

	var entry shortlist.Shortlist
	err := r.db.GetContext(ctx, &entry, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shortlist.ErrShortlistNotFound()
		}
		return nil, fmt.Errorf("failed to get shortlist entry: %w", err)
	}

	return &entry, nil
}

// ListByCompany retrieves a company's shortlist entries, newest first
func (r *PostgresShortlistRepository) ListByCompany(ctx context.Context, companyEmail kernel.Email) ([]shortlist.Shortlist, error) {
	query := `
		SELECT ` + shortlistColumns + `
		FROM shortlists
		WHERE company_email = $1
		ORDER BY created_at DESC
	`

	entries := []shortlist.Shortlist{}
	if err := r.db.SelectContext(ctx, &entries, query, string(companyEmail)); err != nil {
		return nil, fmt.Errorf("failed to list shortlist entries: %w", err)
	}

	return entries, nil
}

// ListApplicationIDs retrieves the shortlisted application IDs for a company
func (r *PostgresShortlistRepository) ListApplicationIDs(ctx context.Context, companyEmail kernel.Email) ([]kernel.ApplicationID, error) {
	query := `SELECT application_id FROM shortlists WHERE company_email = $1`

	var raw []string
	if err := r.db.SelectContext(ctx, &raw, query, string(companyEmail)); err != nil {
		return nil, fmt.Errorf("failed to list shortlisted ids: %w", err)
	}

	ids := make([]kernel.ApplicationID, 0, len(raw))
	for _, id := range raw {
		ids = append(ids, kernel.ApplicationID(id))
	}

	return ids, nil
}

// Delete removes a shortlist entry owned by the company
func (r *PostgresShortlistRepository) Delete(ctx context.Context, id kernel.ShortlistID, companyEmail kernel.Email) error {
	query := `DELETE FROM shortlists WHERE id = $1 AND company_email = $2`

	result, err := r.db.ExecContext(ctx, query, string(id), string(companyEmail))
	if err != nil {
		return fmt.Errorf("failed to delete shortlist entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return shortlist.ErrShortlistNotFound()
	}

	return nil
}
