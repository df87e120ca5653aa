package review

import (
	"net/http"

	"github.com/interviewmate/backend/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("REVIEW")

// Error codes
var (
	CodeScoreRequired  = ErrRegistry.Register("SCORE_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Score is required")
	CodeEntryNotFound  = ErrRegistry.Register("ENTRY_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Leaderboard entry not found")
	CodeInvalidRequest = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrScoreRequired() *errx.Error {
	return ErrRegistry.New(CodeScoreRequired)
}

func ErrEntryNotFound() *errx.Error {
	return ErrRegistry.New(CodeEntryNotFound)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
