package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"treatment_planner/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func TestParseCapabilities(t *testing.T) {
	tests := []struct {
		header string
		want   entities.Capabilities
	}{
		{"", entities.Capabilities{}},
		{"edit", entities.Capabilities{Edit: true}},
		{" Edit , APPROVE,book", entities.Capabilities{Edit: true, Approve: true, Book: true}},
		{"edit_pricing,unknown", entities.Capabilities{EditPricing: true}},
		{"edit-pricing", entities.Capabilities{EditPricing: true}},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			if got := ParseCapabilities(tt.header); got != tt.want {
				t.Fatalf("ParseCapabilities(%q) = %+v, want %+v", tt.header, got, tt.want)
			}
		})
	}
}

func TestCapabilitiesAndRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotCaps entities.Capabilities
	var gotID string
	r := gin.New()
	g := r.Group("/v1/plans/:code", Capabilities(), RequestContext())
	g.GET("", func(c *gin.Context) {
		gotCaps = CapabilitiesFrom(c)
		gotID = RequestIDFrom(c)
		c.Status(http.StatusNoContent)
	})

	t.Run("generates request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/plans/P-1", nil)
		req.Header.Set(HeaderCapabilities, "approve")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if !gotCaps.Approve || gotCaps.Edit {
			t.Fatalf("unexpected caps: %+v", gotCaps)
		}
		if gotID == "" || w.Header().Get(HeaderRequestID) != gotID {
			t.Fatalf("request id not propagated: %q / %q", gotID, w.Header().Get(HeaderRequestID))
		}
	})

	t.Run("keeps caller request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/plans/P-1", nil)
		req.Header.Set(HeaderRequestID, "req-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if gotID != "req-42" {
			t.Fatalf("expected req-42, got %q", gotID)
		}
		if gotCaps != (entities.Capabilities{}) {
			t.Fatalf("expected no caps, got %+v", gotCaps)
		}
	})
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(1, 2)
	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	r := gin.New()
	r.Use(rl.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected codes: %v", codes)
	}

	t.Run("other client has its own bucket", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("idle clients are evicted", func(t *testing.T) {
		now = now.Add(limiterIdleTTL + 2*time.Minute)
		rl.getLimiter("10.0.0.3")
		rl.mu.Lock()
		defer rl.mu.Unlock()
		if _, ok := rl.clients["10.0.0.1"]; ok {
			t.Fatal("expected idle limiter to be evicted")
		}
		if _, ok := rl.clients["10.0.0.3"]; !ok {
			t.Fatal("expected fresh limiter to stay")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		d := NewRateLimiter(0, 0)
		if d.burst != DefaultBurst || float64(d.limit) != DefaultRatePerSecond {
			t.Fatalf("unexpected defaults: %v %d", d.limit, d.burst)
		}
	})
}
