package application

import (
	"time"

	"github.com/interviewmate/backend/pkg/kernel"
)

// SubmitApplicationRequest - DTO for applying to a job. jobId, candidateUid
// and candidateEmail are required; the snapshot fields are filled from the
// job record when absent.
type SubmitApplicationRequest struct {
	JobID          kernel.JobID       `json:"jobId" validate:"required"`
	CandidateUID   kernel.ExternalUID `json:"candidateUid" validate:"required"`
	CandidateEmail kernel.Email       `json:"candidateEmail" validate:"required"`
	CandidateName  string             `json:"candidateName,omitempty"`
	CandidatePhone kernel.Phone       `json:"candidatePhone,omitempty"`
	ResumeURL      kernel.ResumeURL   `json:"resumeUrl,omitempty"`
	AppliedAt      *time.Time         `json:"appliedAt,omitempty"`
}

// ListApplicationsRequest - DTO for the "already applied" probe and
// candidate dashboards; both filters are optional.
type ListApplicationsRequest struct {
	CandidateUID kernel.ExternalUID `json:"candidateUid,omitempty"`
	JobID        kernel.JobID       `json:"jobId,omitempty"`
}

// UpdateStatusRequest - DTO for company-side status transitions
type UpdateStatusRequest struct {
	Status ApplicationStatus `json:"status" validate:"required"`
}
