package errors

import "errors"

var (
	// ErrAccountConflict is returned when username or email is already taken.
	ErrAccountConflict = errors.New("username or email already exists")
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrProfileNotFound is returned when an account has no profile yet.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrSessionInvalid is returned when a session token is missing or expired.
	ErrSessionInvalid = errors.New("invalid or expired session")
)

// ErrorResponse represents a standardized error response body. Err carries the
// underlying error text on 500s only.
type ErrorResponse struct {
	Message string `json:"message"`
	Err     string `json:"error,omitempty"`
}
