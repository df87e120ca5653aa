package job

import (
	"context"

	"github.com/interviewmate/backend/pkg/kernel"
)

type Repository interface {
	// Create creates a new job posting
	Create(ctx context.Context, job *Job) error

	// GetByID retrieves a job by ID
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)

	// List retrieves jobs filtered by sector/company/open-state with pagination
	List(ctx context.Context, req ListJobsRequest) (*kernel.Paginated[Job], error)

	// ListByCompany retrieves jobs owned by a company, newest first
	ListByCompany(ctx context.Context, companyEmail kernel.Email, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)

	// CountByCompany counts jobs owned by a company
	CountByCompany(ctx context.Context, companyEmail kernel.Email) (int64, error)

	// Exists checks if a job exists by ID
	Exists(ctx context.Context, id kernel.JobID) (bool, error)
}
