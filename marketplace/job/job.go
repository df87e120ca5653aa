package job

import (
	"time"

	"github.com/interviewmate/backend/pkg/kernel"
)

// JobType represents the employment type of a posting
type JobType string

const (
	JobTypeFullTime JobType = "full-time"
	JobTypePartTime JobType = "part-time"
	JobTypeRemote   JobType = "remote"
	JobTypeContract JobType = "contract"
	JobTypeIntern   JobType = "internship"
)

// IsValid reports whether the type is one of the closed set
func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeRemote, JobTypeContract, JobTypeIntern:
		return true
	}
	return false
}

type Job struct {
	ID               kernel.JobID       `db:"id" json:"id"`
	Title            kernel.JobTitle    `db:"title" json:"title"`
	Sector           kernel.JobSector   `db:"sector" json:"sector"`
	Type             JobType            `db:"job_type" json:"job_type"`
	Location         kernel.JobLocation `db:"location" json:"location"`
	Vacancy          int                `db:"vacancy" json:"vacancy"`
	SalaryMin        int                `db:"salary_min" json:"salary_min"`
	SalaryMax        int                `db:"salary_max" json:"salary_max"`
	PostedAt         time.Time          `db:"posted_at" json:"posted_at"`
	Deadline         time.Time          `db:"deadline" json:"deadline"`
	Description      string             `db:"description" json:"description"`
	Requirements     string             `db:"requirements" json:"requirements"`
	Responsibilities string             `db:"responsibilities" json:"responsibilities"`
	CreatedByEmail   kernel.Email       `db:"created_by_email" json:"created_by_email"`
	CreatedAt        time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// DeadlinePassed checks whether the posting stopped accepting applications.
// Enforced at read time; expired jobs are never deleted.
func (j *Job) DeadlinePassed(now time.Time) bool {
	return !j.Deadline.IsZero() && now.After(j.Deadline)
}

// IsOwnedBy checks posting ownership against a company email
func (j *Job) IsOwnedBy(email kernel.Email) bool {
	return j.CreatedByEmail == email
}
