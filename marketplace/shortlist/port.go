package shortlist

import (
	"context"

	"github.com/interviewmate/backend/pkg/kernel"
)

type Repository interface {
	// Create inserts a shortlist entry. The unique index on
	// (company_email, application_id) makes re-saving a conflict.
	Create(ctx context.Context, entry *Shortlist) error

	// GetByID retrieves a shortlist entry by ID
	GetByID(ctx context.Context, id kernel.ShortlistID) (*Shortlist, error)

	// ListByCompany retrieves a company's shortlist entries, newest first
	ListByCompany(ctx context.Context, companyEmail kernel.Email) ([]Shortlist, error)

	// ListApplicationIDs retrieves just the shortlisted application IDs for
	// a company
	ListApplicationIDs(ctx context.Context, companyEmail kernel.Email) ([]kernel.ApplicationID, error)

	// Delete removes a shortlist entry owned by the company
	Delete(ctx context.Context, id kernel.ShortlistID, companyEmail kernel.Email) error
}
