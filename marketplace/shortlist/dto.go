package shortlist

import (
	"github.com/interviewmate/backend/marketplace/application"
	"github.com/interviewmate/backend/marketplace/job"
	"github.com/interviewmate/backend/marketplace/user"
	"github.com/interviewmate/backend/pkg/kernel"
)

// AddToShortlistRequest - DTO for saving an application
type AddToShortlistRequest struct {
	ApplicationID kernel.ApplicationID `json:"applicationId" validate:"required"`
}

// DashboardRequest - DTO for the company dashboard aggregate
type DashboardRequest struct {
	CompanyEmail kernel.Email             `json:"companyEmail"`
	Pagination   kernel.PaginationOptions `json:"pagination"`
}

// JobSummary is a posting annotated with its applicant count
type JobSummary struct {
	job.Job
	ApplicationCount int64 `json:"application_count"`
}

// ApplicationSummary is an application annotated with its shortlist state
type ApplicationSummary struct {
	application.Application
	Shortlisted bool `json:"shortlisted"`
}

// DashboardResponse is the company dashboard aggregate: who the company is,
// their postings with per-job applicant counts, and every application against
// those postings flagged with its shortlist state, so the UI renders the
// whole view without extra round trips.
type DashboardResponse struct {
	CompanyName   kernel.DisplayName            `json:"company_name"`
	CompanyStatus user.UserStatus               `json:"company_status"`
	Jobs          *kernel.Paginated[JobSummary] `json:"jobs"`
	Applications  []ApplicationSummary          `json:"applications"`
	Shortlisted   []kernel.ApplicationID        `json:"shortlisted"`
	TotalJobs     int64                         `json:"total_jobs"`
}
