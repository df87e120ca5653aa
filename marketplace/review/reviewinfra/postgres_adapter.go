package reviewinfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/interviewmate/backend/marketplace/review"
	"github.com/interviewmate/backend/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

// PostgresReviewRepository implements review.Repository using PostgreSQL
type PostgresReviewRepository struct {
	db *sqlx.DB
}

// NewPostgresReviewRepository creates a new PostgreSQL review repository
func NewPostgresReviewRepository(db *sqlx.DB) *PostgresReviewRepository {
	return &PostgresReviewRepository{
		db: db,
	}
}

const reviewColumns = `
	id, application_id, room_id, candidate_email, candidate_name,
	interviewer_email, score, breakdown, created_at
`

const leaderboardColumns = `
	candidate_email, candidate_name, total_score, interviews_count, updated_at
`

// CreateWithLeaderboardUpsert inserts the review and folds it into the
// leaderboard in one transaction. The upsert arithmetic runs in SQL so
// concurrent grades for the same candidate serialize on the row.
func (r *PostgresReviewRepository) CreateWithLeaderboardUpsert(ctx context.Context, rev *review.Review) (*review.LeaderboardEntry, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertReview := `
		INSERT INTO reviews (
			id, application_id, room_id, candidate_email, candidate_name,
			interviewer_email, score, breakdown, created_at
		) VALUES (
			:id, :application_id, :room_id, :candidate_email, :candidate_name,
			:interviewer_email, :score, :breakdown, :created_at
		)
	`
	if _, err := tx.NamedExecContext(ctx, insertReview, rev); err != nil {
		return nil, fmt.Errorf("failed to insert review: %w", err)
	}

	upsert := `
		INSERT INTO leaderboard (candidate_email, candidate_name, total_score, interviews_count, updated_at)
		VALUES ($1, $2, $3, 1, NOW())
		ON CONFLICT (candidate_email) DO UPDATE SET
			total_score = leaderboard.total_score + EXCLUDED.total_score,
			interviews_count = leaderboard.interviews_count + 1,
			candidate_name = EXCLUDED.candidate_name,
			updated_at = NOW()
		RETURNING ` + leaderboardColumns

	var entry review.LeaderboardEntry
	if err := tx.GetContext(ctx, &entry, upsert,
		rev.CandidateEmail.String(), rev.CandidateName, rev.Score,
	); err != nil {
		return nil, fmt.Errorf("failed to upsert leaderboard: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit grade: %w", err)
	}

	return &entry, nil
}

// ListByCandidate retrieves a candidate's reviews, newest first
func (r *PostgresReviewRepository) ListByCandidate(ctx context.Context, email kernel.Email) ([]review.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE candidate_email = $1
		ORDER BY created_at DESC
	`

	reviews := []review.Review{}
	if err := r.db.SelectContext(ctx, &reviews, query, string(email)); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}

// GetLeaderboard retrieves a page of the leaderboard, highest total first
func (r *PostgresReviewRepository) GetLeaderboard(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[review.LeaderboardEntry], error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM leaderboard`); err != nil {
		return nil, fmt.Errorf("failed to count leaderboard: %w", err)
	}

	query := `
		SELECT ` + leaderboardColumns + `
		FROM leaderboard
		ORDER BY total_score DESC, candidate_email ASC
		LIMIT $1 OFFSET $2
	`

	entries := []review.LeaderboardEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, pagination.PageSize, pagination.Offset()); err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return kernel.NewPaginated(entries, pagination, total), nil
}

// GetLeaderboardEntry retrieves a single candidate's entry
func (r *PostgresReviewRepository) GetLeaderboardEntry(ctx context.Context, email kernel.Email) (*review.LeaderboardEntry, error) {
	query := `SELECT ` + leaderboardColumns + ` FROM leaderboard WHERE candidate_email = $1`

	var entry review.LeaderboardEntry
	err := r.db.GetContext(ctx, &entry, query, string(email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, review.ErrEntryNotFound()
		}
		return nil, fmt.Errorf("failed to get leaderboard entry: %w", err)
	}

	return &entry, nil
}

// RebuildLeaderboard recomputes every entry from the review rows
func (r *PostgresReviewRepository) RebuildLeaderboard(ctx context.Context) ([]review.LeaderboardEntry, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM leaderboard`); err != nil {
		return nil, fmt.Errorf("failed to clear leaderboard: %w", err)
	}

	rebuild := `
		INSERT INTO leaderboard (candidate_email, candidate_name, total_score, interviews_count, updated_at)
		SELECT candidate_email,
		       (array_agg(candidate_name ORDER BY created_at DESC))[1],
		       SUM(score),
		       COUNT(*),
		       NOW()
		FROM reviews
		GROUP BY candidate_email
		RETURNING ` + leaderboardColumns

	entries := []review.LeaderboardEntry{}
	if err := tx.SelectContext(ctx, &entries, rebuild); err != nil {
		return nil, fmt.Errorf("failed to rebuild leaderboard: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rebuild: %w", err)
	}

	return entries, nil
}
