package interviewinfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/interviewmate/backend/marketplace/interview"
	"github.com/interviewmate/backend/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresInterviewRepository implements interview.Repository using PostgreSQL
type PostgresInterviewRepository struct {
	db *sqlx.DB
}

// NewPostgresInterviewRepository creates a new PostgreSQL interview repository
func NewPostgresInterviewRepository(db *sqlx.DB) *PostgresInterviewRepository {
	return &PostgresInterviewRepository{
		db: db,
	}
}

const interviewColumns = `
	id, application_id, name, email, interview_date, time_slot, topic,
	payment_status, approval_status, room_id, created_by, created_at
`

// Create inserts an interview candidate
func (r *PostgresInterviewRepository) Create(ctx context.Context, candidate *interview.InterviewCandidate) error {
	query := `
		INSERT INTO interview_candidates (
			id, application_id, name, email, interview_date, time_slot, topic,
			payment_status, approval_status, room_id, created_by, created_at
		) VALUES (
			:id, :application_id, :name, :email, :interview_date, :time_slot, :topic,
			:payment_status, :approval_status, :room_id, :created_by, :created_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, candidate)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" { // unique_violation
			return interview.ErrInterviewAlreadyExists()
		}
		return fmt.Errorf("failed to create interview candidate: %w", err)
	}

	return nil
}

// GetByID retrieves an interview candidate by ID
func (r *PostgresInterviewRepository) GetByID(ctx context.Context, id kernel.InterviewID) (*interview.InterviewCandidate, error) {
	query := `SELECT ` + interviewColumns + ` FROM interview_candidates WHERE id = $1`

	var candidate interview.InterviewCandidate
	err := r.db.GetContext(ctx, &candidate, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, interview.ErrInterviewNotFound()
		}
		return nil, fmt.Errorf("failed to get interview candidate: %w", err)
	}

	return &candidate, nil
}

// GetByApplicationID retrieves the interview scheduled for a slot application
func (r *PostgresInterviewRepository) GetByApplicationID(ctx context.Context, applicationID kernel.SlotApplicationID) (*interview.InterviewCandidate, error) {
	query := `SELECT ` + interviewColumns + ` FROM interview_candidates WHERE application_id = $1`

	var candidate interview.InterviewCandidate
	err := r.db.GetContext(ctx, &candidate, query, string(applicationID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, interview.ErrInterviewNotFound()
		}
		return nil, fmt.Errorf("failed to get interview by application: %w", err)
	}

	return &candidate, nil
}

// List retrieves all interview candidates, newest first
func (r *PostgresInterviewRepository) List(ctx context.Context) ([]interview.InterviewCandidate, error) {
	query := `SELECT ` + interviewColumns + ` FROM interview_candidates ORDER BY created_at DESC`

	candidates := []interview.InterviewCandidate{}
	if err := r.db.SelectContext(ctx, &candidates, query); err != nil {
		return nil, fmt.Errorf("failed to list interview candidates: %w", err)
	}

	return candidates, nil
}
