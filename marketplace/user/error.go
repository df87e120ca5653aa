package user

import (
	"net/http"

	"github.com/interviewmate/backend/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("USER")

// Error codes
var (
	CodeUserNotFound         = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "User not found")
	CodeUserAlreadyExists    = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "User already exists")
	CodeUserInactive         = ErrRegistry.Register("INACTIVE", errx.TypeAuthorization, http.StatusForbidden, "Account is not active")
	CodeInvalidRole          = ErrRegistry.Register("INVALID_ROLE", errx.TypeValidation, http.StatusBadRequest, "Invalid account role")
	CodeInvalidStatus        = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Invalid account status")
	CodeMissingProfile       = ErrRegistry.Register("MISSING_PROFILE", errx.TypeValidation, http.StatusBadRequest, "Profile data is required")
	CodeProfileRoleMismatch  = ErrRegistry.Register("PROFILE_ROLE_MISMATCH", errx.TypeValidation, http.StatusBadRequest, "Profile does not match account role")
	CodeInvalidRequest       = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeNotCandidate         = ErrRegistry.Register("NOT_CANDIDATE", errx.TypeAuthorization, http.StatusForbidden, "Only candidate accounts can upload resumes")
)

// Helper functions
func ErrUserNotFound() *errx.Error {
	return ErrRegistry.New(CodeUserNotFound)
}

func ErrUserAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeUserAlreadyExists)
}

func ErrUserInactive() *errx.Error {
	return ErrRegistry.New(CodeUserInactive)
}

func ErrInvalidRole() *errx.Error {
	return ErrRegistry.New(CodeInvalidRole)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}

func ErrMissingProfile() *errx.Error {
	return ErrRegistry.New(CodeMissingProfile)
}

func ErrProfileRoleMismatch() *errx.Error {
	return ErrRegistry.New(CodeProfileRoleMismatch)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrNotCandidate() *errx.Error {
	return ErrRegistry.New(CodeNotCandidate)
}
