package slot

import (
	"time"

	"github.com/interviewmate/backend/pkg/kernel"
)

// TimeSlot is one of the six bookable interview windows. Anything else is
// rejected at the boundary.
type TimeSlot string

const (
	TimeSlot9AM  TimeSlot = "09:00-10:00"
	TimeSlot10AM TimeSlot = "10:00-11:00"
	TimeSlot11AM TimeSlot = "11:00-12:00"
	TimeSlot2PM  TimeSlot = "14:00-15:00"
	TimeSlot3PM  TimeSlot = "15:00-16:00"
	TimeSlot4PM  TimeSlot = "16:00-17:00"
)

// IsValid reports whether the time slot is one of the closed set
func (t TimeSlot) IsValid() bool {
	switch t {
	case TimeSlot9AM, TimeSlot10AM, TimeSlot11AM, TimeSlot2PM, TimeSlot3PM, TimeSlot4PM:
		return true
	}
	return false
}

// Topic is the subject of a mock interview. Unrecognized input is stored as
// TopicOther rather than rejected.
type Topic string

const (
	TopicDSA          Topic = "Data Structures & Algorithms"
	TopicSystemDesign Topic = "System Design"
	TopicBehavioral   Topic = "Behavioral"
	TopicWebDev       Topic = "Web Development"
	TopicOther        Topic = "Other"
)

// Normalize maps arbitrary input onto the closed topic set, substituting
// TopicOther for anything unrecognized.
func (t Topic) Normalize() Topic {
	switch t {
	case TopicDSA, TopicSystemDesign, TopicBehavioral, TopicWebDev, TopicOther:
		return t
	}
	return TopicOther
}

// PaymentStatus tracks whether the booking fee was settled
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// IsValid reports whether the payment status is one of the closed set
func (p PaymentStatus) IsValid() bool {
	return p == PaymentStatusUnpaid || p == PaymentStatusPaid
}

// ApprovalStatus tracks admin sign-off, independent of payment
type ApprovalStatus string

const (
	ApprovalStatusNotApproved ApprovalStatus = "Not approved"
	ApprovalStatusApproved    ApprovalStatus = "Approved"
)

// IsValid reports whether the approval status is one of the closed set
func (a ApprovalStatus) IsValid() bool {
	return a == ApprovalStatusNotApproved || a == ApprovalStatusApproved
}

// SlotApplication is a candidate's booking of an interview time slot.
// Distinct from a job application: duplicates are allowed since a candidate
// may legitimately book multiple slots.
type SlotApplication struct {
	ID             kernel.SlotApplicationID `db:"id" json:"id"`
	Name           string                   `db:"name" json:"name"`
	Email          kernel.Email             `db:"email" json:"email"`
	Date           time.Time                `db:"slot_date" json:"date"`
	TimeSlot       TimeSlot                 `db:"time_slot" json:"time_slot"`
	Topic          Topic                    `db:"topic" json:"topic"`
	PaymentStatus  PaymentStatus            `db:"payment_status" json:"payment_status"`
	ApprovalStatus ApprovalStatus           `db:"approval_status" json:"approval_status"`
	CreatedAt      time.Time                `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time                `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsPaid checks whether the booking fee was settled
func (s *SlotApplication) IsPaid() bool {
	return s.PaymentStatus == PaymentStatusPaid
}

// IsReady checks whether both the payment and approval axes reached their
// good state. Scheduling does not block on this; it is advisory.
func (s *SlotApplication) IsReady() bool {
	return s.PaymentStatus == PaymentStatusPaid && s.ApprovalStatus == ApprovalStatusApproved
}

// StaleRetention is how long an unpaid booking survives before the
// opportunistic sweep removes it.
const StaleRetention = 72 * time.Hour

// IsStale checks whether an unpaid booking outlived its retention window
func (s *SlotApplication) IsStale(now time.Time) bool {
	return s.PaymentStatus == PaymentStatusUnpaid && now.Sub(s.CreatedAt) > StaleRetention
}
