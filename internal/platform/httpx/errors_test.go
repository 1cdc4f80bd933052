package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantage-invest/vantage-admin/internal/shared"
)

func respond(t *testing.T, err error) (int, Envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	RespondError(rec, err)
	var body Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestRespondErrorBusinessFailuresAre400(t *testing.T) {
	for _, err := range []error{
		fmt.Errorf("%w: user id is required", shared.ErrValidation),
		fmt.Errorf("%w: user 9", shared.ErrNotFound),
		shared.ErrInvalidCredentials,
	} {
		code, body := respond(t, err)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.False(t, body.Success)
		assert.NotEmpty(t, body.Message)
	}
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	code, body := respond(t, errors.New("dial tcp 10.0.0.3:5432: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "something went wrong", body.Message)
}
