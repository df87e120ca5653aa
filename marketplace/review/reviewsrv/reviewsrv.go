package reviewsrv

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/interviewmate/backend/marketplace/review"
	"github.com/interviewmate/backend/pkg/errx"
	"github.com/interviewmate/backend/pkg/kernel"
	"github.com/interviewmate/backend/pkg/logx"
)

// ReviewService grades interviews and maintains the leaderboard fold
type ReviewService struct {
	reviewRepo review.Repository
	cache      review.Cache
}

// NewReviewService creates a new instance of the review service
func NewReviewService(reviewRepo review.Repository, cache review.Cache) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		cache:      cache,
	}
}

// GradeInterview records a review and folds the score into the candidate's
// leaderboard entry in one transaction. The redis ranking is refreshed
// afterwards on a best-effort basis; Postgres stays the source of truth.
func (s *ReviewService) GradeInterview(ctx context.Context, req review.GradeInterviewRequest) (*review.LeaderboardEntry, error) {
	if req.CandidateEmail.IsEmpty() {
		return nil, review.ErrInvalidRequest().WithDetail("missing", "candidateEmail is required")
	}
	if req.Score == nil {
		return nil, review.ErrScoreRequired()
	}

	r := &review.Review{
		ID:               kernel.NewReviewID(uuid.NewString()),
		ApplicationID:    req.ApplicationID,
		RoomID:           req.RoomID,
		CandidateEmail:   kernel.NewEmail(req.CandidateEmail.String()),
		CandidateName:    req.CandidateName,
		InterviewerEmail: req.InterviewerEmail,
		Score:            *req.Score,
		Breakdown:        req.Breakdown,
		CreatedAt:        time.Now(),
	}

	entry, err := s.reviewRepo.CreateWithLeaderboardUpsert(ctx, r)
	if err != nil {
		return nil, errx.Wrap(err, "failed to grade interview", errx.TypeInternal)
	}

	if s.cache != nil {
		if err := s.cache.IncrementScore(ctx, r.CandidateEmail, r.Score); err != nil {
			logx.Warnf("leaderboard cache increment failed for %s: %v", r.CandidateEmail, err)
		}
	}

	return entry, nil
}

// ListReviews retrieves a candidate's reviews, newest first
func (s *ReviewService) ListReviews(ctx context.Context, email kernel.Email) ([]review.Review, error) {
	reviews, err := s.reviewRepo.ListByCandidate(ctx, email)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list reviews", errx.TypeInternal)
	}
	return reviews, nil
}

// GetLeaderboard retrieves a page of the leaderboard from Postgres
func (s *ReviewService) GetLeaderboard(ctx context.Context, req review.LeaderboardRequest) (*kernel.Paginated[review.LeaderboardEntry], error) {
	board, err := s.reviewRepo.GetLeaderboard(ctx, req.Pagination.Normalized())
	if err != nil {
		return nil, errx.Wrap(err, "failed to get leaderboard", errx.TypeInternal)
	}
	return board, nil
}

// GetCandidateStanding retrieves a single candidate's leaderboard entry
func (s *ReviewService) GetCandidateStanding(ctx context.Context, email kernel.Email) (*review.LeaderboardEntry, error) {
	entry, err := s.reviewRepo.GetLeaderboardEntry(ctx, email)
	if err != nil {
		return nil, review.ErrEntryNotFound().WithDetail("email", email.String())
	}
	return entry, nil
}

// TopN serves the hot ranking from redis, falling back to Postgres when the
// cache is empty or unavailable.
func (s *ReviewService) TopN(ctx context.Context, n int64) ([]review.RankedCandidate, error) {
	if n <= 0 {
		n = 10
	}

	if s.cache != nil {
		ranked, err := s.cache.TopN(ctx, n)
		if err == nil && len(ranked) > 0 {
			return ranked, nil
		}
		if err != nil {
			logx.Warnf("leaderboard cache read failed: %v", err)
		}
	}

	board, err := s.reviewRepo.GetLeaderboard(ctx, kernel.PaginationOptions{Page: 1, PageSize: int(n)}.Normalized())
	if err != nil {
		return nil, errx.Wrap(err, "failed to get top candidates", errx.TypeInternal)
	}

	ranked := make([]review.RankedCandidate, 0, len(board.Items))
	for i := range board.Items {
		ranked = append(ranked, review.RankedCandidate{
			CandidateEmail: board.Items[i].CandidateEmail,
			TotalScore:     board.Items[i].TotalScore,
		})
	}

	return ranked, nil
}

// RebuildLeaderboard recomputes every entry from the review rows and
// refreshes the cache. The self-healing path for any drift in the fold.
func (s *ReviewService) RebuildLeaderboard(ctx context.Context) (int, error) {
	entries, err := s.reviewRepo.RebuildLeaderboard(ctx)
	if err != nil {
		return 0, errx.Wrap(err, "failed to rebuild leaderboard", errx.TypeInternal)
	}

	if s.cache != nil {
		if err := s.cache.Rebuild(ctx, entries); err != nil {
			logx.Warnf("leaderboard cache rebuild failed: %v", err)
		}
	}

	logx.Infof("leaderboard rebuilt with %d entries", len(entries))
	return len(entries), nil
}
