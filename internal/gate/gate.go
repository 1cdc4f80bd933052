// Package gate implements the client-side permission gate. It decides which
// of two renderables to show based on the caller's permission set, fetched
// once from the permissions endpoint.
//
// The gate is a rendering hint only. It fails closed on any fetch error, but
// server-side middleware remains the enforcement boundary.
package gate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/vantage-invest/vantage-admin/internal/rbac"
)

// DefaultFallback is rendered when no fallback is supplied.
const DefaultFallback = "You do not have access to view this section."

// Gate fetches the caller's permission set exactly once and answers
// rendering decisions from the cached result.
type Gate struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger

	once sync.Once
	set  rbac.PermissionSet
}

// New constructs a Gate. The client should carry the caller's session
// cookie; a nil client falls back to http.DefaultClient.
func New(endpoint string, client *http.Client, logger *slog.Logger) *Gate {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{endpoint: endpoint, client: client, logger: logger}
}

type permissionsEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Unrestricted bool     `json:"unrestricted"`
		Permissions  []string `json:"permissions"`
	} `json:"data"`
}

// Allowed reports whether the caller holds the named permission. The first
// call triggers the fetch; later calls reuse the cached set.
func (g *Gate) Allowed(ctx context.Context, permission string) bool {
	g.once.Do(func() { g.set = g.fetch(ctx) })
	return g.set.Has(permission)
}

// Choose returns children when the caller holds the permission, otherwise
// the fallback. An empty fallback renders the default no-access notice.
func (g *Gate) Choose(ctx context.Context, permission, children, fallback string) string {
	if g.Allowed(ctx, permission) {
		return children
	}
	if fallback == "" {
		return DefaultFallback
	}
	return fallback
}

// fetch loads the permission set. Any failure resolves to an empty
// restricted set; the error is logged but never surfaced to the renderer.
func (g *Gate) fetch(ctx context.Context) rbac.PermissionSet {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint, nil)
	if err != nil {
		g.logger.Error("gate build request", slog.Any("error", err))
		return rbac.RestrictedSet()
	}
	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error("gate fetch permissions", slog.Any("error", err))
		return rbac.RestrictedSet()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.Error("gate fetch permissions", slog.Any("error", fmt.Errorf("status %d", resp.StatusCode)))
		return rbac.RestrictedSet()
	}

	var envelope permissionsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		g.logger.Error("gate decode permissions", slog.Any("error", err))
		return rbac.RestrictedSet()
	}
	if !envelope.Success {
		return rbac.RestrictedSet()
	}
	if envelope.Data.Unrestricted {
		return rbac.UnrestrictedSet()
	}
	return rbac.RestrictedSet(envelope.Data.Permissions...)
}
