package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for use with errors.Is in services and tests.
var (
	// ErrNotFound indicates that a requested resource could not be found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation indicates that input data failed validation checks.
	ErrValidation = errors.New("validation error")

	// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
	ErrDuplicate = errors.New("resource already exists")

	// ErrUnauthorized indicates a request without a usable credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates a credential that is present but invalid or insufficient.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials indicates a failed password check or a deactivated account.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidSession indicates a bearer token with no matching valid session.
	ErrInvalidSession = errors.New("invalid or expired session")

	// ErrInvalidState indicates an operation not permitted in the entity's current lifecycle state.
	ErrInvalidState = errors.New("operation not permitted in current state")

	// ErrSelfVote indicates a user attempting to vote for their own submission.
	ErrSelfVote = errors.New("cannot vote for own submission")
)

// AppError carries an HTTP status code and a user-safe message alongside the
// underlying error. Handlers unwrap it with errors.As and return Code/Message
// to the client; the wrapped error stays server-side.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping an arbitrary underlying error.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrDuplicate}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message, Err: ErrUnauthorized}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message, Err: ErrForbidden}
}

func NewInvalidStateError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrInvalidState}
}

func NewSelfVoteError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrSelfVote}
}

func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message}
}
