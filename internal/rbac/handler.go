package rbac

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vantage-invest/vantage-admin/internal/platform/httpx"
	"github.com/vantage-invest/vantage-admin/internal/shared"
)

// Handler exposes the caller's resolved permission set. The frontend gate
// consumes this endpoint; it is a hint for rendering decisions only, the
// middleware in this package remains the enforcement point.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers permission routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/me", h.myPermissions)
}

type permissionSetResponse struct {
	Unrestricted bool     `json:"unrestricted"`
	Permissions  []string `json:"permissions"`
}

func (h *Handler) myPermissions(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil || strings.TrimSpace(sess.User()) == "" {
		httpx.Fail(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	userID, err := strconv.ParseInt(strings.TrimSpace(sess.User()), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	set, err := h.service.Resolve(r.Context(), userID)
	if err != nil {
		h.logger.Error("resolve permissions failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.Success(w, "", permissionSetResponse{
		Unrestricted: set.IsUnrestricted(),
		Permissions:  set.Names(),
	})
}
