package shortlist

import (
	"net/http"

	"github.com/interviewmate/backend/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("SHORTLIST")

// Error codes
var (
	CodeShortlistNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Shortlist entry not found")
	CodeShortlistAlreadyExists = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Application already shortlisted")
	CodeNotCompany             = ErrRegistry.Register("NOT_COMPANY", errx.TypeAuthorization, http.StatusForbidden, "Only company accounts can manage shortlists")
	CodeInvalidRequest         = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrShortlistNotFound() *errx.Error {
	return ErrRegistry.New(CodeShortlistNotFound)
}

func ErrShortlistAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeShortlistAlreadyExists)
}

func ErrNotCompany() *errx.Error {
	return ErrRegistry.New(CodeNotCompany)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
