package errx

import (
	"fmt"
	"net/http"
)

// ErrorType classifies an error for logging and HTTP translation
type ErrorType string

const (
	TypeValidation     ErrorType = "VALIDATION"
	TypeAuthentication ErrorType = "AUTHENTICATION"
	TypeAuthorization  ErrorType = "AUTHORIZATION"
	TypeNotFound       ErrorType = "NOT_FOUND"
	TypeConflict       ErrorType = "CONFLICT"
	TypeBusiness       ErrorType = "BUSINESS"
	TypeInternal       ErrorType = "INTERNAL"
)

// Code identifies a registered error within a registry namespace
type Code string

// definition holds the static metadata registered for a code
type definition struct {
	errType    ErrorType
	httpStatus int
	message    string
}

// Registry is a namespaced collection of error definitions.
// Each domain package creates one registry and registers its codes at init.
type Registry struct {
	prefix      string
	definitions map[Code]definition
}

// NewRegistry creates a new error registry with the given namespace prefix
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix:      prefix,
		definitions: make(map[Code]definition),
	}
}

// Register records an error definition and returns its code.
// The full code exposed to clients is "<PREFIX>_<code>".
func (r *Registry) Register(code string, errType ErrorType, httpStatus int, message string) Code {
	c := Code(r.prefix + "_" + code)
	r.definitions[c] = definition{
		errType:    errType,
		httpStatus: httpStatus,
		message:    message,
	}
	return c
}

// New creates an error instance for a registered code
func (r *Registry) New(code Code) *Error {
	def, ok := r.definitions[code]
	if !ok {
		return &Error{
			Type:       TypeInternal,
			Code:       code,
			Message:    "Unknown error",
			HTTPStatus: http.StatusInternalServerError,
		}
	}

	return &Error{
		Type:       def.errType,
		Code:       code,
		Message:    def.message,
		HTTPStatus: def.httpStatus,
	}
}

// Error is a rich error carrying a type, a stable code, an HTTP status
// and optional key/value details. It is the only error shape that crosses
// the HTTP boundary with a precise status.
type Error struct {
	Type       ErrorType      `json:"type"`
	Code       Code           `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As
func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetail attaches a key/value pair to the error and returns it for chaining
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause attaches the underlying error
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// IsType reports whether the error has the given type
func (e *Error) IsType(t ErrorType) bool {
	return e.Type == t
}

// ToHTTPResponse returns the JSON body sent to clients. The cause is never
// included; it stays server-side.
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"error":   true,
		"type":    e.Type,
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// Wrap converts an arbitrary error into an *Error with the given message and
// type. If err is already an *Error it is returned unchanged so registered
// codes survive service-layer wrapping.
func Wrap(err error, message string, errType ErrorType) *Error {
	if err == nil {
		return nil
	}

	if e, ok := err.(*Error); ok {
		return e
	}

	return &Error{
		Type:       errType,
		Code:       Code(string(errType)),
		Message:    message,
		HTTPStatus: httpStatusForType(errType),
		cause:      err,
	}
}

func httpStatusForType(t ErrorType) int {
	switch t {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeAuthentication:
		return http.StatusUnauthorized
	case TypeAuthorization:
		return http.StatusForbidden
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeBusiness:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// GetError extracts an *Error from any error, or nil if it is not one
func GetError(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return nil
}
