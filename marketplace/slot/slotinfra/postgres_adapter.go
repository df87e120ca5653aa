package slotinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/interviewmate/backend/marketplace/slot"
	"github.com/interviewmate/backend/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

// PostgresSlotRepository implements slot.Repository using PostgreSQL
type PostgresSlotRepository struct {
	db *sqlx.DB
}

// NewPostgresSlotRepository creates a new PostgreSQL slot repository
func NewPostgresSlotRepository(db *sqlx.DB) *PostgresSlotRepository {
	return &PostgresSlotRepository{
		db: db,
	}
}

const slotColumns = `
	id, name, email, slot_date, time_slot, topic, payment_status,
	approval_status, created_at, updated_at
`

// Create inserts a new slot application
func (r *PostgresSlotRepository) Create(ctx context.Context, app *slot.SlotApplication) error {
	query := `
		INSERT INTO slot_applications (
			id, name, email, slot_date, time_slot, topic, payment_status,
			approval_status, created_at, updated_at
		) VALUES (
			:id, :name, :email, :slot_date, :time_slot, :topic, :payment_status,
			:approval_status, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, app); err != nil {
		return fmt.Errorf("failed to create slot application: %w", err)
	}

	return nil
}

// GetByID retrieves a slot application by ID
func (r *PostgresSlotRepository) GetByID(ctx context.Context, id kernel.SlotApplicationID) (*slot.SlotApplication, error) {
	query := `SELECT ` + slotColumns + ` FROM slot_applications WHERE id = $1`

	var app slot.SlotApplication
	err := r.db.GetContext(ctx, &app, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, slot.ErrSlotApplicationNotFound()
		}
		return nil, fmt.Errorf("failed to get slot application: %w", err)
	}

	return &app, nil
}

// ListAll retrieves every slot application, newest first
func (r *PostgresSlotRepository) ListAll(ctx context.Context) ([]slot.SlotApplication, error) {
	query := `SELECT ` + slotColumns + ` FROM slot_applications ORDER BY created_at DESC`

	apps := []slot.SlotApplication{}
	if err := r.db.SelectContext(ctx, &apps, query); err != nil {
		return nil, fmt.Errorf("failed to list slot applications: %w", err)
	}

	return apps, nil
}

// ListByPaymentStatus retrieves a filtered, paginated page of applications
func (r *PostgresSlotRepository) ListByPaymentStatus(ctx context.Context, status *slot.PaymentStatus, pagination kernel.PaginationOptions) (*kernel.Paginated[slot.SlotApplication], error) {
	where := ""
	args := []interface{}{}
	if status != nil {
		where = "WHERE payment_status = $1"
		args = append(args, string(*status))
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM slot_applications %s", where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count slot applications: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+slotColumns+`
		FROM slot_applications
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, pagination.PageSize, pagination.Offset())

	apps := []slot.SlotApplication{}
	if err := r.db.SelectContext(ctx, &apps, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list payment queue: %w", err)
	}

	return kernel.NewPaginated(apps, pagination, total), nil
}

// UpdateStatuses persists the payment/approval toggles; nil fields stay as-is
func (r *PostgresSlotRepository) UpdateStatuses(ctx context.Context, id kernel.SlotApplicationID, payment *slot.PaymentStatus, approval *slot.ApprovalStatus) error {
	query := `
		UPDATE slot_applications
		SET payment_status = COALESCE($1, payment_status),
		    approval_status = COALESCE($2, approval_status),
		    updated_at = NOW()
		WHERE id = $3
	`

	var paymentArg, approvalArg interface{}
	if payment != nil {
		paymentArg = string(*payment)
	}
	if approval != nil {
		approvalArg = string(*approval)
	}

	result, err := r.db.ExecContext(ctx, query, paymentArg, approvalArg, string(id))
	if err != nil {
		return fmt.Errorf("failed to update slot statuses: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return slot.ErrSlotApplicationNotFound()
	}

	return nil
}

// Delete removes a slot application
func (r *PostgresSlotRepository) Delete(ctx context.Context, id kernel.SlotApplicationID) error {
	query := `DELETE FROM slot_applications WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete slot application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return slot.ErrSlotApplicationNotFound()
	}

	return nil
}

// PurgeStaleUnpaid deletes unpaid applications created before the cutoff.
// created_at is timestamptz, so the comparison is immune to the string
// format drift that plagues ISO-string storage.
func (r *PostgresSlotRepository) PurgeStaleUnpaid(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM slot_applications WHERE payment_status = $1 AND created_at < $2`

	result, err := r.db.ExecContext(ctx, query, string(slot.PaymentStatusUnpaid), cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge stale applications: %w", err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count purged applications: %w", err)
	}

	return purged, nil
}
