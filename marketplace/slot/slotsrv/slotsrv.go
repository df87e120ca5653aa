package slotsrv

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/interviewmate/backend/marketplace/slot"
	"github.com/interviewmate/backend/pkg/errx"
	"github.com/interviewmate/backend/pkg/kernel"
	"github.com/interviewmate/backend/pkg/logx"
)

// SlotService manages interview slot bookings and the payment queue
type SlotService struct {
	slotRepo slot.Repository
}

// NewSlotService creates a new instance of the slot service
func NewSlotService(slotRepo slot.Repository) *SlotService {
	return &SlotService{
		slotRepo: slotRepo,
	}
}

// Submit records a slot booking from the public apply form. The time slot
// must be one of the fixed windows; the topic is normalized, never rejected.
func (s *SlotService) Submit(ctx context.Context, req slot.SubmitSlotApplicationRequest) (*slot.SlotApplication, error) {
	if req.Name == "" || req.Email.IsEmpty() || req.Date.IsZero() {
		return nil, slot.ErrInvalidRequest().
			WithDetail("missing", "name, email and date are required")
	}
	if !req.TimeSlot.IsValid() {
		return nil, slot.ErrInvalidTimeSlot().WithDetail("time_slot", req.TimeSlot)
	}

	now := time.Now()
	app := &slot.SlotApplication{
		ID:             kernel.NewSlotApplicationID(uuid.NewString()),
		Name:           req.Name,
		Email:          kernel.NewEmail(req.Email.String()),
		Date:           req.Date,
		TimeSlot:       req.TimeSlot,
		Topic:          req.Topic.Normalize(),
		PaymentStatus:  slot.PaymentStatusUnpaid,
		ApprovalStatus: slot.ApprovalStatusNotApproved,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.slotRepo.Create(ctx, app); err != nil {
		return nil, errx.Wrap(err, "failed to create slot application", errx.TypeInternal)
	}

	return app, nil
}

// ListAll retrieves every slot application, newest first
func (s *SlotService) ListAll(ctx context.Context) ([]slot.SlotApplication, error) {
	apps, err := s.slotRepo.ListAll(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list slot applications", errx.TypeInternal)
	}
	return apps, nil
}

// GetByID retrieves a single slot application
func (s *SlotService) GetByID(ctx context.Context, id kernel.SlotApplicationID) (*slot.SlotApplication, error) {
	app, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, slot.ErrSlotApplicationNotFound().WithDetail("id", id.String())
	}
	return app, nil
}

// ReviewPaymentQueue sweeps stale unpaid bookings, then returns the
// filtered, paginated remainder. The sweep runs opportunistically on every
// admin read rather than from a background job.
func (s *SlotService) ReviewPaymentQueue(ctx context.Context, req slot.PaymentQueueRequest) (*kernel.Paginated[slot.SlotApplication], error) {
	if req.PaymentStatus != nil && !req.PaymentStatus.IsValid() {
		return nil, slot.ErrInvalidStatus().WithDetail("payment_status", *req.PaymentStatus)
	}

	cutoff := time.Now().Add(-slot.StaleRetention)
	purged, err := s.slotRepo.PurgeStaleUnpaid(ctx, cutoff)
	if err != nil {
		return nil, errx.Wrap(err, "failed to purge stale applications", errx.TypeInternal)
	}
	if purged > 0 {
		logx.Infof("purged %d stale unpaid slot applications", purged)
	}

	queue, err := s.slotRepo.ListByPaymentStatus(ctx, req.PaymentStatus, req.Pagination.Normalized())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list payment queue", errx.TypeInternal)
	}

	return queue, nil
}

// UpdatePaymentOrApproval toggles either or both status axes independently.
// There is no cross-validation between them.
func (s *SlotService) UpdatePaymentOrApproval(ctx context.Context, id kernel.SlotApplicationID, req slot.UpdatePaymentRequest) (*slot.SlotApplication, error) {
	if req.PaymentStatus == nil && req.ApprovalStatus == nil {
		return nil, slot.ErrInvalidRequest().WithDetail("missing", "paymentStatus or approvalStatus is required")
	}
	if req.PaymentStatus != nil && !req.PaymentStatus.IsValid() {
		return nil, slot.ErrInvalidStatus().WithDetail("payment_status", *req.PaymentStatus)
	}
	if req.ApprovalStatus != nil && !req.ApprovalStatus.IsValid() {
		return nil, slot.ErrInvalidStatus().WithDetail("approval_status", *req.ApprovalStatus)
	}

	if err := s.slotRepo.UpdateStatuses(ctx, id, req.PaymentStatus, req.ApprovalStatus); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// DeleteUnpaid removes a slot application unless the booking fee was paid.
// The paid guard is the one hard stop in the moderation surface.
func (s *SlotService) DeleteUnpaid(ctx context.Context, id kernel.SlotApplicationID) error {
	app, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		return slot.ErrSlotApplicationNotFound().WithDetail("id", id.String())
	}

	if app.IsPaid() {
		return slot.ErrPaidDeleteBlocked().WithDetail("id", id.String())
	}

	if err := s.slotRepo.Delete(ctx, app.ID); err != nil {
		return errx.Wrap(err, "failed to delete slot application", errx.TypeInternal)
	}

	return nil
}
