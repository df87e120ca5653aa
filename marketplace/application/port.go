package application

import (
	"context"

	"github.com/interviewmate/backend/pkg/kernel"
)

type Repository interface {
	// Create inserts a new application. The storage layer's unique index on
	// (job_id, candidate_uid) is the single source of truth for duplicates;
	// a violation surfaces as ErrApplicationAlreadyExists.
	Create(ctx context.Context, application *Application) error

	// GetByID retrieves an application by ID
	GetByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)

	// List retrieves applications matching the optional filters, newest first
	List(ctx context.Context, req ListApplicationsRequest) ([]Application, error)

	// ListByCompany retrieves all applications across a company's jobs
	ListByCompany(ctx context.Context, companyEmail kernel.Email) ([]Application, error)

	// ListByCandidate retrieves a candidate's applications, newest first,
	// paginated
	ListByCandidate(ctx context.Context, candidateUID kernel.ExternalUID, pagination kernel.PaginationOptions) (*kernel.Paginated[Application], error)

	// UpdateStatus persists a status transition
	UpdateStatus(ctx context.Context, id kernel.ApplicationID, status ApplicationStatus) error

	// DeleteCascade removes the application and any companion shortlist rows
	// for the given company in a single transaction
	DeleteCascade(ctx context.Context, id kernel.ApplicationID, companyEmail kernel.Email) error

	// CountByJob returns the number of applications grouped by job for the
	// given job IDs
	CountByJob(ctx context.Context, jobIDs []kernel.JobID) (map[kernel.JobID]int64, error)
}
