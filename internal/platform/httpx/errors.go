package httpx

import (
	"errors"
	"net/http"

	"github.com/vantage-invest/vantage-admin/internal/shared"
)

// RespondError maps domain errors to HTTP failure envelopes. Validation,
// not-found and credential failures are business-rule rejections (400); any
// other error is reported as a generic 500 without leaking detail.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrValidation),
		errors.Is(err, shared.ErrNotFound),
		errors.Is(err, shared.ErrInvalidCredentials):
		Fail(w, http.StatusBadRequest, shared.UserSafeMessage(err))
	default:
		Fail(w, http.StatusInternalServerError, shared.UserSafeMessage(err))
	}
}
