package rbac

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/vantage-invest/vantage-admin/internal/shared"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// sessionRequest builds a request whose context carries a committed session
// with the given user id, role and admin flag.
func sessionRequest(t *testing.T, userID, role string, admin bool) *http.Request {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	sm := shared.NewSessionManager(client, "test_session", 0, false)
	sess, err := sm.Load(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	if userID != "" {
		sess.SetUser(userID)
	}
	if role != "" {
		sess.Set(shared.SessionKeyRole, role)
	}
	if admin {
		sess.Set(shared.SessionKeyIsAdmin, "1")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return req.WithContext(shared.ContextWithSession(req.Context(), sess))
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	mw := Middleware{Service: NewService(stubRepo{}), Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	handler := mw.RequireRoles("Manager", "Admin")(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, sessionRequest(t, "7", "manager", false))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRolesRejectsMissingSession(t *testing.T) {
	mw := Middleware{Service: NewService(stubRepo{})}
	handler := mw.RequireRoles("Admin")(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRolesRejectsDisallowedRole(t *testing.T) {
	mw := Middleware{Service: NewService(stubRepo{})}
	handler := mw.RequireRoles("Admin")(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, sessionRequest(t, "7", "Viewer", false))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRolesAdminFlagBypassesRoleCheck(t *testing.T) {
	mw := Middleware{Service: NewService(stubRepo{})}
	handler := mw.RequireRoles("Manager")(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, sessionRequest(t, "1", "", true))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequirePermissionChecksResolvedSet(t *testing.T) {
	svc := NewService(stubRepo{
		grants: UserGrants{HasRole: true, Permissions: []string{"dashboard.view"}},
		found:  true,
	})
	mw := Middleware{Service: svc, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	rec := httptest.NewRecorder()
	mw.RequirePermission("dashboard.view")(okHandler()).ServeHTTP(rec, sessionRequest(t, "7", "Viewer", false))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mw.RequirePermission("users.edit")(okHandler()).ServeHTTP(rec, sessionRequest(t, "7", "Viewer", false))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequirePermissionFailsClosedWithoutUser(t *testing.T) {
	mw := Middleware{Service: NewService(stubRepo{})}
	rec := httptest.NewRecorder()
	mw.RequirePermission("dashboard.view")(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusForbidden, rec.Code)
}
