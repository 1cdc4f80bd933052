package shared

import "errors"

var (
	// ErrValidation indicates a required input was missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound indicates the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates a credential mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserSafeMessage returns a message suitable for end users. Internal error
// detail is never surfaced through this function.
func UserSafeMessage(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "required input is missing or invalid"
	case errors.Is(err, ErrNotFound):
		return "the requested record was not found"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid credentials"
	default:
		return "something went wrong"
	}
}
