package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/welcomehome/inventory/internal/config"
)

func cacheCfg() config.CacheConfig {
	return config.CacheConfig{
		Enabled:     true,
		Methods:     map[string]bool{"GET": true},
		TTL:         15 * time.Second,
		KeyStrategy: "route_query",
		Prefix:      "cache",
	}
}

// lookupContext builds an echo context the way the router produces it
// for a parameterized lookup: the registered pattern carries :id while
// the request URL carries the concrete value.
func lookupContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/v1/items/:id/locations")
	return c
}

func TestCacheKeyDistinguishesResources(t *testing.T) {
	cfg := cacheCfg()

	keyA := cacheKeyFrom(cfg, lookupContext("/v1/items/item-A/locations"))
	keyB := cacheKeyFrom(cfg, lookupContext("/v1/items/item-B/locations"))
	if keyA == keyB {
		t.Fatalf("two items share one cache key %q; item B would replay item A's response", keyA)
	}

	// The same resource keys identically across requests.
	again := cacheKeyFrom(cfg, lookupContext("/v1/items/item-A/locations"))
	if again != keyA {
		t.Fatalf("same request produced different keys %q and %q", keyA, again)
	}

	// The query string is part of the default strategy.
	withQuery := cacheKeyFrom(cfg, lookupContext("/v1/items/item-A/locations?verbose=1"))
	if withQuery == keyA {
		t.Fatal("query string did not affect the cache key")
	}
}

func TestCacheKeyStrategies(t *testing.T) {
	cfg := cacheCfg()
	for _, strategy := range []string{"route", "method_route", "method_route_query", "route_query"} {
		cfg.KeyStrategy = strategy
		keyA := cacheKeyFrom(cfg, lookupContext("/v1/items/item-A/locations"))
		keyB := cacheKeyFrom(cfg, lookupContext("/v1/items/item-B/locations"))
		if keyA == keyB {
			t.Fatalf("strategy %s collides keys across resource IDs", strategy)
		}
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{}
	hdr.Set("Content-Type", "application/json")
	body := []byte(`{"item_id":"item-A","locations":["warehouse A"]}`)

	encoded, err := encodePayload(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	status, gotHdr, gotBody, ok := decodePayload(encoded)
	if !ok {
		t.Fatal("decode reported failure on a valid payload")
	}
	if status != http.StatusOK {
		t.Fatalf("status %d, want %d", status, http.StatusOK)
	}
	if gotHdr.Get("Content-Type") != "application/json" {
		t.Fatalf("headers lost in round trip: %v", gotHdr)
	}
	if string(gotBody) != string(body) {
		t.Fatalf("body %q, want %q", gotBody, body)
	}
}

func TestDecodePayloadRejectsTruncatedData(t *testing.T) {
	if _, _, _, ok := decodePayload([]byte{0, 0, 0}); ok {
		t.Fatal("decode accepted a payload shorter than its framing")
	}
	// A header length pointing past the end of the buffer is invalid.
	bad := []byte{0, 0, 0, 200, 0, 0, 1, 0}
	if _, _, _, ok := decodePayload(bad); ok {
		t.Fatal("decode accepted an out-of-range header length")
	}
}
