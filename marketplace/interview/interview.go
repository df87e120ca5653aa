package interview

import (
	"time"

	"github.com/interviewmate/backend/marketplace/slot"
	"github.com/interviewmate/backend/pkg/kernel"
)

// InterviewCandidate is a scheduled interview promoted from a slot
// application. At most one exists per slot application, enforced by a
// unique index on application_id.
type InterviewCandidate struct {
	ID             kernel.InterviewID       `db:"id" json:"id"`
	ApplicationID  kernel.SlotApplicationID `db:"application_id" json:"application_id"`
	Name           string                   `db:"name" json:"name"`
	Email          kernel.Email             `db:"email" json:"email"`
	Date           time.Time                `db:"interview_date" json:"date"`
	TimeSlot       slot.TimeSlot            `db:"time_slot" json:"time_slot"`
	Topic          slot.Topic               `db:"topic" json:"topic"`
	PaymentStatus  slot.PaymentStatus       `db:"payment_status" json:"payment_status"`
	ApprovalStatus slot.ApprovalStatus      `db:"approval_status" json:"approval_status"`
	RoomID         kernel.RoomID            `db:"room_id" json:"room_id"`
	CreatedBy      kernel.Email             `db:"created_by" json:"created_by"`
	CreatedAt      time.Time                `db:"created_at" json:"created_at"`
}

// IsReady checks whether the underlying booking is paid and approved.
// Scheduling is not blocked on this; callers surface it as a warning.
func (i *InterviewCandidate) IsReady() bool {
	return i.PaymentStatus == slot.PaymentStatusPaid && i.ApprovalStatus == slot.ApprovalStatusApproved
}
