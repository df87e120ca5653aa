package application

import (
	"slices"
	"time"

	"github.com/interviewmate/backend/pkg/kernel"
)

// ApplicationStatus represents the workflow status of a job application.
// A closed set with an explicit transition table; unrecognized values are
// rejected at the boundary.
type ApplicationStatus string

const (
	ApplicationStatusSubmitted   ApplicationStatus = "submitted"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusHired       ApplicationStatus = "hired"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// IsValid reports whether the status is one of the closed set
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusSubmitted, ApplicationStatusUnderReview,
		ApplicationStatusShortlisted, ApplicationStatusHired, ApplicationStatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID             kernel.ApplicationID `db:"id" json:"id"`
	JobID          kernel.JobID         `db:"job_id" json:"job_id"`
	CandidateUID   kernel.ExternalUID   `db:"candidate_uid" json:"candidate_uid"`
	CandidateEmail kernel.Email         `db:"candidate_email" json:"candidate_email"`
	CandidateName  string               `db:"candidate_name" json:"candidate_name"`
	CandidatePhone kernel.Phone         `db:"candidate_phone" json:"candidate_phone"`
	ResumeURL      kernel.ResumeURL     `db:"resume_url" json:"resume_url"`
	JobTitle       kernel.JobTitle      `db:"job_title" json:"job_title"`
	CompanyName    string               `db:"company_name" json:"company_name"`
	CompanyEmail   kernel.Email         `db:"company_email" json:"company_email"`
	Sector         kernel.JobSector     `db:"sector" json:"sector"`
	SalaryMin      int                  `db:"salary_min" json:"salary_min"`
	SalaryMax      int                  `db:"salary_max" json:"salary_max"`
	Status         ApplicationStatus    `db:"status" json:"status"`
	AppliedAt      time.Time            `db:"applied_at" json:"applied_at"`
	CreatedAt      time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time            `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsTerminal checks whether the application reached a final state
func (a *Application) IsTerminal() bool {
	return a.Status == ApplicationStatusHired || a.Status == ApplicationStatusRejected
}

// CanUpdateStatus checks if the status may change to newStatus
func (a *Application) CanUpdateStatus(newStatus ApplicationStatus) bool {
	validTransitions := map[ApplicationStatus][]ApplicationStatus{
		ApplicationStatusSubmitted: {
			ApplicationStatusUnderReview,
			ApplicationStatusShortlisted,
			ApplicationStatusRejected,
		},
		ApplicationStatusUnderReview: {
			ApplicationStatusShortlisted,
			ApplicationStatusRejected,
		},
		ApplicationStatusShortlisted: {
			ApplicationStatusHired,
			ApplicationStatusRejected,
		},
	}

	allowed, ok := validTransitions[a.Status]
	if !ok {
		return false
	}

	return slices.Contains(allowed, newStatus)
}

// UpdateStatus transitions the application to newStatus
func (a *Application) UpdateStatus(newStatus ApplicationStatus) error {
	if !newStatus.IsValid() {
		return ErrInvalidStatus().WithDetail("status", newStatus)
	}
	if !a.CanUpdateStatus(newStatus) {
		return ErrInvalidStatusTransition().
			WithDetail("current_status", a.Status).
			WithDetail("new_status", newStatus)
	}

	a.Status = newStatus
	a.UpdatedAt = time.Now()
	return nil
}
