package auth

import (
	"net/http"

	"github.com/interviewmate/backend/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("AUTH")

// Error codes
var (
	CodeMissingToken     = ErrRegistry.Register("MISSING_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Missing authorization header")
	CodeInvalidToken     = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid or expired token")
	CodeForbiddenRole    = ErrRegistry.Register("FORBIDDEN_ROLE", errx.TypeAuthorization, http.StatusForbidden, "Role is not allowed to perform this action")
	CodeInvalidLogin     = ErrRegistry.Register("INVALID_LOGIN", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid email or password")
	CodeTokenGeneration  = ErrRegistry.Register("TOKEN_GENERATION", errx.TypeInternal, http.StatusInternalServerError, "Failed to generate token")
)

// Helper functions
func ErrMissingToken() *errx.Error {
	return ErrRegistry.New(CodeMissingToken)
}

func ErrInvalidToken() *errx.Error {
	return ErrRegistry.New(CodeInvalidToken)
}

func ErrForbiddenRole() *errx.Error {
	return ErrRegistry.New(CodeForbiddenRole)
}

func ErrInvalidLogin() *errx.Error {
	return ErrRegistry.New(CodeInvalidLogin)
}

func ErrTokenGeneration() *errx.Error {
	return ErrRegistry.New(CodeTokenGeneration)
}
