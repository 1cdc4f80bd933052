package gate

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func permissionsServer(t *testing.T, hits *atomic.Int64, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGateRendersChildrenWhenPermitted(t *testing.T) {
	var hits atomic.Int64
	srv := permissionsServer(t, &hits,
		`{"success":true,"data":{"unrestricted":false,"permissions":["payouts.view"]}}`)

	g := New(srv.URL, srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	assert.Equal(t, "payout table", g.Choose(ctx, "payouts.view", "payout table", "no access"))
	assert.Equal(t, "no access", g.Choose(ctx, "users.edit", "user form", "no access"))
}

func TestGateFetchesExactlyOnce(t *testing.T) {
	var hits atomic.Int64
	srv := permissionsServer(t, &hits,
		`{"success":true,"data":{"unrestricted":false,"permissions":["a"]}}`)

	g := New(srv.URL, srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		g.Allowed(ctx, "a")
		g.Allowed(ctx, "b")
	}
	require.Equal(t, int64(1), hits.Load())
}

func TestGateUnrestrictedGrantsEverything(t *testing.T) {
	var hits atomic.Int64
	srv := permissionsServer(t, &hits,
		`{"success":true,"data":{"unrestricted":true,"permissions":[]}}`)

	g := New(srv.URL, srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.True(t, g.Allowed(context.Background(), "anything.at.all"))
}

func TestGateFailsClosedOnFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	g := New(srv.URL, srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.False(t, g.Allowed(context.Background(), "payouts.view"))
}

func TestGateFailsClosedOnUnreachableEndpoint(t *testing.T) {
	g := New("http://127.0.0.1:1/permissions/me", nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()
	assert.False(t, g.Allowed(ctx, "payouts.view"))
	assert.Equal(t, DefaultFallback, g.Choose(ctx, "payouts.view", "payout table", ""))
}
