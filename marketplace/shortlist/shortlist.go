package shortlist

import (
	"time"

	"github.com/interviewmate/backend/marketplace/application"
	"github.com/interviewmate/backend/pkg/kernel"
)

// Shortlist marks an application as saved by a company. One entry per
// (company, application) pair, enforced by a unique index.
type Shortlist struct {
	ID             kernel.ShortlistID   `db:"id" json:"id"`
	CompanyEmail   kernel.Email         `db:"company_email" json:"company_email"`
	ApplicationID  kernel.ApplicationID `db:"application_id" json:"application_id"`
	JobID          kernel.JobID         `db:"job_id" json:"job_id"`
	CandidateEmail kernel.Email         `db:"candidate_email" json:"candidate_email"`
	CandidateName  string               `db:"candidate_name" json:"candidate_name"`
	// Status is a snapshot of the application's status at shortlist time
	Status    application.ApplicationStatus `db:"status" json:"status"`
	CreatedAt time.Time                     `db:"created_at" json:"created_at"`
}
