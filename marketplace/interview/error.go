package interview

import (
	"net/http"

	"github.com/interviewmate/backend/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("INTERVIEW")

// Error codes
var (
	CodeInterviewNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Interview candidate not found")
	CodeInterviewAlreadyExists = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Slot application already scheduled")
	CodeNotScheduler           = ErrRegistry.Register("NOT_SCHEDULER", errx.TypeAuthorization, http.StatusForbidden, "Only active HR and company accounts can schedule interviews")
	CodeInvalidRequest         = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrInterviewNotFound() *errx.Error {
	return ErrRegistry.New(CodeInterviewNotFound)
}

func ErrInterviewAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeInterviewAlreadyExists)
}

func ErrNotScheduler() *errx.Error {
	return ErrRegistry.New(CodeNotScheduler)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
