package profile

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(repo Repository) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(logger, NewService(repo))
	r := chi.NewRouter()
	r.Route("/profile", handler.MountRoutes)
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestFindUsersMissingIDIsRejected(t *testing.T) {
	router := newTestRouter(newMockRepository())

	req := httptest.NewRequest(http.MethodGet, "/profile/findUsers", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "user id is required", body.Message)
}

func TestFindUsersUnknownIDReturnsNullData(t *testing.T) {
	router := newTestRouter(newMockRepository())

	req := httptest.NewRequest(http.MethodGet, "/profile/findUsers?id=99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "null", strings.TrimSpace(string(body.Data)))
}

func TestFindUsersReturnsProfile(t *testing.T) {
	repo := newMockRepository()
	repo.profiles[7] = &Profile{ID: 7, Name: "Asha", Role: &Role{ID: 2, Name: "Manager"}}
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/profile/findUsers?id=7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	require.True(t, body.Success)

	var user Profile
	require.NoError(t, json.Unmarshal(body.Data, &user))
	assert.Equal(t, int64(7), user.ID)
	require.NotNil(t, user.Role)
	assert.Equal(t, "Manager", user.Role.Name)
}

func TestUpdatePasswordRejectsIncompleteBody(t *testing.T) {
	router := newTestRouter(newMockRepository())

	req := httptest.NewRequest(http.MethodPut, "/profile/updatePassword",
		strings.NewReader(`{"userId":7,"currentPassword":"old"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)
}

func TestUpdatePasswordWrongCurrentIsBusinessFailure(t *testing.T) {
	repo := newMockRepository()
	repo.hashes[7] = mustHash(t, "old secret")
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodPut, "/profile/updatePassword",
		strings.NewReader(`{"userId":7,"currentPassword":"wrong","newPassword":"fresh"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "invalid credentials", body.Message)
}

func TestUpdatePasswordSuccess(t *testing.T) {
	repo := newMockRepository()
	repo.hashes[7] = mustHash(t, "old secret")
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodPut, "/profile/updatePassword",
		strings.NewReader(`{"userId":7,"currentPassword":"old secret","newPassword":"fresh"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "Password updated successfully", body.Message)
}
