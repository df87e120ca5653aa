package interview

import (
	"context"

	"github.com/interviewmate/backend/pkg/kernel"
)

type Repository interface {
	// Create inserts an interview candidate. The unique index on
	// application_id rejects double-scheduling.
	Create(ctx context.Context, candidate *InterviewCandidate) error

	// GetByID retrieves an interview candidate by ID
	GetByID(ctx context.Context, id kernel.InterviewID) (*InterviewCandidate, error)

	// GetByApplicationID retrieves the interview scheduled for a slot
	// application, if any
	GetByApplicationID(ctx context.Context, applicationID kernel.SlotApplicationID) (*InterviewCandidate, error)

	// List retrieves all interview candidates, newest first
	List(ctx context.Context) ([]InterviewCandidate, error)
}
