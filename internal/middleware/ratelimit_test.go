package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/welcomehome/inventory/internal/config"
)

func rateCtx(username string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/items", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/v1/items")
	if username != "" {
		c.Set("username", username)
	}
	return c
}

func TestBuildRateKeyStrategies(t *testing.T) {
	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "user"}

	alice := buildRateKey(cfg, rateCtx("alice"))
	bob := buildRateKey(cfg, rateCtx("bob"))
	if alice == bob {
		t.Fatalf("user strategy shares bucket %q across users", alice)
	}
	if !strings.HasPrefix(alice, "rl:") {
		t.Fatalf("key %q missing prefix", alice)
	}

	// The default strategy folds IP, user and route into the key.
	cfg.KeyStrategy = "ip_user_route"
	key := buildRateKey(cfg, rateCtx("alice"))
	for _, want := range []string{"alice", "GET /v1/items"} {
		if !strings.Contains(key, want) {
			t.Fatalf("key %q missing %q", key, want)
		}
	}
}

func TestCurrentUsernameFallsBackToAnon(t *testing.T) {
	if got := currentUsername(rateCtx("")); got != "anon" {
		t.Fatalf("unauthenticated username %q, want anon", got)
	}
	if got := currentUsername(rateCtx("alice")); got != "alice" {
		t.Fatalf("username %q, want alice", got)
	}
}

func TestAsInt64(t *testing.T) {
	cases := []struct {
		in   interface{}
		want int64
	}{
		{int64(7), 7},
		{int(3), 3},
		{float64(12), 12},
		{"42", 42},
		{"junk", 0},
		{nil, 0},
	}
	for _, tc := range cases {
		if got := asInt64(tc.in); got != tc.want {
			t.Fatalf("asInt64(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
