package slot

import (
	"time"

	"github.com/interviewmate/backend/pkg/kernel"
)

// SubmitSlotApplicationRequest - DTO for the public apply form
type SubmitSlotApplicationRequest struct {
	Name     string       `json:"name" validate:"required"`
	Email    kernel.Email `json:"email" validate:"required"`
	Date     time.Time    `json:"date" validate:"required"`
	TimeSlot TimeSlot     `json:"timeSlot" validate:"required"`
	Topic    Topic        `json:"topic"`
}

// PaymentQueueRequest - DTO for the admin payment review queue
type PaymentQueueRequest struct {
	PaymentStatus *PaymentStatus           `json:"paymentStatus,omitempty"`
	Pagination    kernel.PaginationOptions `json:"pagination"`
}

// UpdatePaymentRequest - DTO for the independent payment/approval toggles.
// Either field may be sent alone.
type UpdatePaymentRequest struct {
	PaymentStatus  *PaymentStatus  `json:"paymentStatus,omitempty"`
	ApprovalStatus *ApprovalStatus `json:"approvalStatus,omitempty"`
}
