package profile

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/vantage-invest/vantage-admin/internal/platform/httpx"
)

// Handler exposes the profile endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers profile routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/findUsers", h.findUsers)
	r.Put("/updatePassword", h.updatePassword)
}

func (h *Handler) findUsers(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("id"))
	if raw == "" {
		httpx.Fail(w, http.StatusBadRequest, "user id is required")
		return
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "user id must be numeric")
		return
	}

	user, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		h.logger.Error("get profile failed", slog.Any("error", err), slog.Int64("user_id", userID))
		httpx.RespondError(w, err)
		return
	}
	// A missing user is reported as data:null, not as an error.
	httpx.Success(w, "", user)
}

type updatePasswordRequest struct {
	UserID          int64  `json:"userId" validate:"required,gt=0"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	var req updatePasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "userId, currentPassword and newPassword are required")
		return
	}

	if err := h.service.ChangePassword(r.Context(), req.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		h.logger.Warn("change password rejected", slog.Any("error", err), slog.Int64("user_id", req.UserID))
		httpx.RespondError(w, err)
		return
	}
	httpx.Success(w, "Password updated successfully", nil)
}
