package review

import (
	"time"

	"github.com/interviewmate/backend/pkg/kernel"
)

// Review is a graded interview. Scores arrive on a 0-30 scale by
// convention; out-of-range values are stored as-is.
type Review struct {
	ID               kernel.ReviewID          `db:"id" json:"id"`
	ApplicationID    kernel.SlotApplicationID `db:"application_id" json:"application_id"`
	RoomID           kernel.RoomID            `db:"room_id" json:"room_id"`
	CandidateEmail   kernel.Email             `db:"candidate_email" json:"candidate_email"`
	CandidateName    string                   `db:"candidate_name" json:"candidate_name"`
	InterviewerEmail kernel.Email             `db:"interviewer_email" json:"interviewer_email"`
	Score            int                      `db:"score" json:"score"`
	Breakdown        string                   `db:"breakdown" json:"breakdown"`
	CreatedAt        time.Time                `db:"created_at" json:"created_at"`
}

// LeaderboardEntry is the running fold over a candidate's reviews: the
// total score and count must always equal the sum and count of that
// candidate's Review rows.
type LeaderboardEntry struct {
	CandidateEmail  kernel.Email `db:"candidate_email" json:"candidate_email"`
	CandidateName   string       `db:"candidate_name" json:"candidate_name"`
	TotalScore      int64        `db:"total_score" json:"total_score"`
	InterviewsCount int64        `db:"interviews_count" json:"interviews_count"`
	UpdatedAt       time.Time    `db:"updated_at" json:"updated_at"`
}

// AverageScore computes the mean score across the candidate's interviews
func (e *LeaderboardEntry) AverageScore() float64 {
	if e.InterviewsCount == 0 {
		return 0
	}
	return float64(e.TotalScore) / float64(e.InterviewsCount)
}
