package reviewsrv

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/interviewmate/backend/marketplace/review"
	"github.com/interviewmate/backend/pkg/errx"
	"github.com/interviewmate/backend/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews []review.Review
	board   map[kernel.Email]*review.LeaderboardEntry
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{board: make(map[kernel.Email]*review.LeaderboardEntry)}
}

func (f *fakeReviewRepo) CreateWithLeaderboardUpsert(_ context.Context, r *review.Review) (*review.LeaderboardEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reviews = append(f.reviews, *r)

	entry, ok := f.board[r.CandidateEmail]
	if !ok {
		entry = &review.LeaderboardEntry{CandidateEmail: r.CandidateEmail}
		f.board[r.CandidateEmail] = entry
	}
	entry.TotalScore += int64(r.Score)
	entry.InterviewsCount++
	entry.CandidateName = r.CandidateName
	entry.UpdatedAt = time.Now()

	cp := *entry
	return &cp, nil
}

func (f *fakeReviewRepo) ListByCandidate(_ context.Context, email kernel.Email) ([]review.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []review.Review
	for _, r := range f.reviews {
		if r.CandidateEmail == email {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) GetLeaderboard(_ context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[review.LeaderboardEntry], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries := make([]review.LeaderboardEntry, 0, len(f.board))
	for _, e := range f.board {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].TotalScore > entries[j].TotalScore })

	total := len(entries)
	start := pagination.Offset()
	if start > total {
		start = total
	}
	end := start + pagination.PageSize
	if end > total {
		end = total
	}
	return kernel.NewPaginated(entries[start:end], pagination, total), nil
}

func (f *fakeReviewRepo) GetLeaderboardEntry(_ context.Context, email kernel.Email) (*review.LeaderboardEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.board[email]
	if !ok {
		return nil, review.ErrEntryNotFound()
	}
	cp := *entry
	return &cp, nil
}

func (f *fakeReviewRepo) RebuildLeaderboard(_ context.Context) ([]review.LeaderboardEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rebuilt := make(map[kernel.Email]*review.LeaderboardEntry)
	for _, r := range f.reviews {
		entry, ok := rebuilt[r.CandidateEmail]
		if !ok {
			entry = &review.LeaderboardEntry{CandidateEmail: r.CandidateEmail, CandidateName: r.CandidateName}
			rebuilt[r.CandidateEmail] = entry
		}
		entry.TotalScore += int64(r.Score)
		entry.InterviewsCount++
	}
	f.board = rebuilt
	out := make([]review.LeaderboardEntry, 0, len(rebuilt))
	for _, e := range rebuilt {
		out = append(out, *e)
	}
	return out, nil
}

// brokenCache fails every call; used to prove grading never depends on it
type brokenCache struct{}

func (brokenCache) IncrementScore(context.Context, kernel.Email, int) error {
	return errors.New("cache down")
}

func (brokenCache) TopN(context.Context, int64) ([]review.RankedCandidate, error) {
	return nil, errors.New("cache down")
}

func (brokenCache) Rebuild(context.Context, []review.LeaderboardEntry) error {
	return errors.New("cache down")
}

func intPtr(n int) *int { return &n }

func TestGradeRequiresScore(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo(), nil)

	_, err := svc.GradeInterview(context.Background(), review.GradeInterviewRequest{
		CandidateEmail: "alice@mail.com",
	})

	require.Error(t, err)
	e := errx.GetError(err)
	require.NotNil(t, e)
	assert.True(t, e.IsType(errx.TypeValidation))
}

func TestGradeFoldsIntoLeaderboard(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, nil)

	scores := []int{12, 25, 7}
	var last *review.LeaderboardEntry
	for _, s := range scores {
		entry, err := svc.GradeInterview(context.Background(), review.GradeInterviewRequest{
			CandidateEmail: "alice@mail.com",
			CandidateName:  "Alice",
			Score:          intPtr(s),
		})
		require.NoError(t, err)
		last = entry
	}

	assert.Equal(t, int64(44), last.TotalScore)
	assert.Equal(t, int64(3), last.InterviewsCount)
	assert.InDelta(t, 44.0/3.0, last.AverageScore(), 0.001)

	reviews, err := svc.ListReviews(context.Background(), "alice@mail.com")
	require.NoError(t, err)
	assert.Len(t, reviews, 3)
}

func TestGradeAcceptsExplicitZeroScore(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo(), nil)

	entry, err := svc.GradeInterview(context.Background(), review.GradeInterviewRequest{
		CandidateEmail: "bob@mail.com",
		Score:          intPtr(0),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(0), entry.TotalScore)
	assert.Equal(t, int64(1), entry.InterviewsCount)
}

func TestGradeSurvivesCacheFailure(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo(), brokenCache{})

	entry, err := svc.GradeInterview(context.Background(), review.GradeInterviewRequest{
		CandidateEmail: "alice@mail.com",
		Score:          intPtr(20),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(20), entry.TotalScore)
}

func TestTopNFallsBackToPostgres(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, brokenCache{})

	for _, grade := range []struct {
		email string
		score int
	}{
		{"alice@mail.com", 28},
		{"bob@mail.com", 15},
		{"carol@mail.com", 22},
	} {
		_, err := svc.GradeInterview(context.Background(), review.GradeInterviewRequest{
			CandidateEmail: kernel.Email(grade.email),
			Score:          intPtr(grade.score),
		})
		require.NoError(t, err)
	}

	ranked, err := svc.TopN(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, kernel.Email("alice@mail.com"), ranked[0].CandidateEmail)
	assert.Equal(t, int64(28), ranked[0].TotalScore)
	assert.Equal(t, kernel.Email("carol@mail.com"), ranked[1].CandidateEmail)
}

func TestRebuildMatchesFold(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, nil)

	for i := 0; i < 4; i++ {
		_, err := svc.GradeInterview(context.Background(), review.GradeInterviewRequest{
			CandidateEmail: "alice@mail.com",
			Score:          intPtr(10),
		})
		require.NoError(t, err)
	}

	count, err := svc.RebuildLeaderboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	entry, err := svc.GetCandidateStanding(context.Background(), "alice@mail.com")
	require.NoError(t, err)
	assert.Equal(t, int64(40), entry.TotalScore)
	assert.Equal(t, int64(4), entry.InterviewsCount)
}
