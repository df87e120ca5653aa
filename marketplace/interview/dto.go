package interview

import "github.com/interviewmate/backend/pkg/kernel"

// PromoteRequest - DTO for promoting a slot application into a scheduled
// interview. The applicant and schedule fields are copied from the slot
// application server-side.
type PromoteRequest struct {
	ApplicationID kernel.SlotApplicationID `json:"applicationId" validate:"required"`
	RoomID        kernel.RoomID            `json:"roomId,omitempty"`
}

// PromoteResponse carries the new record plus an advisory readiness flag so
// the UI can warn about unpaid or unapproved bookings without being blocked.
type PromoteResponse struct {
	Interview *InterviewCandidate `json:"interview"`
	Ready     bool                `json:"ready"`
}
