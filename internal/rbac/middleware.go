package rbac

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/vantage-invest/vantage-admin/internal/platform/httpx"
	"github.com/vantage-invest/vantage-admin/internal/shared"
)

// Middleware wires authorization helpers for HTTP handlers.
type Middleware struct {
	Service *Service
	Logger  *slog.Logger
}

// RequireRoles ensures the caller's role, attached to the session upstream,
// is one of the allowed role names. Absent or disallowed roles are rejected
// with 403.
func (m Middleware) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		role = strings.TrimSpace(strings.ToLower(role))
		if role == "" {
			continue
		}
		allowed[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(allowed) == 0 {
				next.ServeHTTP(w, r)
				return
			}
			sess := shared.SessionFromContext(r.Context())
			if sess == nil || sess.User() == "" {
				httpx.Fail(w, http.StatusForbidden, "forbidden")
				return
			}
			if sess.Get(shared.SessionKeyIsAdmin) == "1" {
				next.ServeHTTP(w, r)
				return
			}
			role := strings.TrimSpace(strings.ToLower(sess.Get(shared.SessionKeyRole)))
			if _, ok := allowed[role]; !ok {
				httpx.Fail(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission ensures the caller's resolved permission set grants the
// named permission. Resolution errors fail closed.
func (m Middleware) RequirePermission(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := m.currentUserID(r)
			if !ok {
				httpx.Fail(w, http.StatusForbidden, "forbidden")
				return
			}
			set, err := m.Service.Resolve(r.Context(), userID)
			if err != nil {
				if m.Logger != nil {
					m.Logger.Error("rbac resolve permissions", slog.Any("error", err))
				}
				httpx.Fail(w, http.StatusInternalServerError, "something went wrong")
				return
			}
			if !set.Has(name) {
				httpx.Fail(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m Middleware) currentUserID(r *http.Request) (int64, bool) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		return 0, false
	}
	raw := strings.TrimSpace(sess.User())
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if m.Logger != nil {
			m.Logger.Error("rbac parse user id", slog.String("value", raw))
		}
		return 0, false
	}
	return id, true
}
