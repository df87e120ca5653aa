package slot

import (
	"net/http"

	"github.com/interviewmate/backend/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("SLOT")

// Error codes
var (
	CodeSlotApplicationNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Slot application not found")
	CodeInvalidTimeSlot         = ErrRegistry.Register("INVALID_TIME_SLOT", errx.TypeValidation, http.StatusBadRequest, "Invalid time slot")
	CodeInvalidStatus           = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Invalid payment or approval status")
	CodePaidDeleteBlocked       = ErrRegistry.Register("PAID_DELETE_BLOCKED", errx.TypeAuthorization, http.StatusForbidden, "Paid applications cannot be deleted")
	CodeInvalidRequest          = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrSlotApplicationNotFound() *errx.Error {
	return ErrRegistry.New(CodeSlotApplicationNotFound)
}

func ErrInvalidTimeSlot() *errx.Error {
	return ErrRegistry.New(CodeInvalidTimeSlot)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}

func ErrPaidDeleteBlocked() *errx.Error {
	return ErrRegistry.New(CodePaidDeleteBlocked)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
