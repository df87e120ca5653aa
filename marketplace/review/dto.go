package review

import "github.com/interviewmate/backend/pkg/kernel"

// GradeInterviewRequest - DTO for grading a finished interview. Score is a
// pointer so an absent score can be told apart from an explicit zero.
type GradeInterviewRequest struct {
	ApplicationID    kernel.SlotApplicationID `json:"applicationId,omitempty"`
	RoomID           kernel.RoomID            `json:"roomId,omitempty"`
	CandidateEmail   kernel.Email             `json:"candidateEmail" validate:"required"`
	CandidateName    string                   `json:"candidateName,omitempty"`
	InterviewerEmail kernel.Email             `json:"interviewerEmail,omitempty"`
	Score            *int                     `json:"score" validate:"required"`
	Breakdown        string                   `json:"breakdown,omitempty"`
}

// LeaderboardRequest - DTO for the paginated leaderboard read
type LeaderboardRequest struct {
	Pagination kernel.PaginationOptions `json:"pagination"`
}
