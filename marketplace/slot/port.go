package slot

import (
	"context"
	"time"

	"github.com/interviewmate/backend/pkg/kernel"
)

type Repository interface {
	// Create inserts a new slot application. No duplicate check: a candidate
	// may book multiple slots.
	Create(ctx context.Context, app *SlotApplication) error

	// GetByID retrieves a slot application by ID
	GetByID(ctx context.Context, id kernel.SlotApplicationID) (*SlotApplication, error)

	// ListAll retrieves all slot applications, newest first
	ListAll(ctx context.Context) ([]SlotApplication, error)

	// ListByPaymentStatus retrieves a filtered, paginated page of applications
	ListByPaymentStatus(ctx context.Context, status *PaymentStatus, pagination kernel.PaginationOptions) (*kernel.Paginated[SlotApplication], error)

	// UpdateStatuses persists the payment/approval toggles; nil fields are
	// left untouched
	UpdateStatuses(ctx context.Context, id kernel.SlotApplicationID, payment *PaymentStatus, approval *ApprovalStatus) error

	// Delete removes a slot application
	Delete(ctx context.Context, id kernel.SlotApplicationID) error

	// PurgeStaleUnpaid deletes unpaid applications created before the cutoff
	// and returns how many were removed
	PurgeStaleUnpaid(ctx context.Context, cutoff time.Time) (int64, error)
}
