package job

import (
	"time"

	"github.com/interviewmate/backend/pkg/kernel"
)

// CreateJobRequest - DTO for creating a new posting
type CreateJobRequest struct {
	Title            kernel.JobTitle    `json:"title" validate:"required"`
	Sector           kernel.JobSector   `json:"sector" validate:"required"`
	Type             JobType            `json:"job_type" validate:"required"`
	Location         kernel.JobLocation `json:"location"`
	Vacancy          int                `json:"vacancy"`
	SalaryMin        int                `json:"salary_min"`
	SalaryMax        int                `json:"salary_max"`
	Deadline         time.Time          `json:"deadline"`
	Description      string             `json:"description"`
	Requirements     string             `json:"requirements"`
	Responsibilities string             `json:"responsibilities"`
}

// ListJobsRequest - DTO for the public catalog listing
type ListJobsRequest struct {
	Sector     kernel.JobSector         `json:"sector,omitempty"`
	Company    kernel.Email             `json:"company,omitempty"`
	OpenOnly   bool                     `json:"open_only,omitempty"`
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// Response type alias for paginated jobs
type PaginatedJobsResponse = kernel.Paginated[Job]
