package review

import (
	"context"

	"github.com/interviewmate/backend/pkg/kernel"
)

type Repository interface {
	// CreateWithLeaderboardUpsert inserts the review and folds it into the
	// candidate's leaderboard entry in one transaction.
	CreateWithLeaderboardUpsert(ctx context.Context, r *Review) (*LeaderboardEntry, error)

	// ListByCandidate retrieves a candidate's reviews, newest first
	ListByCandidate(ctx context.Context, email kernel.Email) ([]Review, error)

	// GetLeaderboard retrieves a page of the leaderboard, highest total first
	GetLeaderboard(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[LeaderboardEntry], error)

	// GetLeaderboardEntry retrieves a single candidate's entry
	GetLeaderboardEntry(ctx context.Context, email kernel.Email) (*LeaderboardEntry, error)

	// RebuildLeaderboard recomputes every entry from the review rows,
	// replacing whatever is stored
	RebuildLeaderboard(ctx context.Context) ([]LeaderboardEntry, error)
}

// Cache is the hot-path ranking view. Best effort: a cache failure never
// fails the write path.
type Cache interface {
	// IncrementScore folds a new score into the cached ranking
	IncrementScore(ctx context.Context, email kernel.Email, score int) error

	// TopN retrieves the highest-ranked candidate emails with their totals
	TopN(ctx context.Context, n int64) ([]RankedCandidate, error)

	// Rebuild replaces the cached ranking wholesale
	Rebuild(ctx context.Context, entries []LeaderboardEntry) error
}

// RankedCandidate is a cache-side ranking row
type RankedCandidate struct {
	CandidateEmail kernel.Email `json:"candidate_email"`
	TotalScore     int64        `json:"total_score"`
}
