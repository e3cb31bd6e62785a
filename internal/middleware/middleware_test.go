package middleware

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fireReport/internal/config"
	"fireReport/internal/domain"
	"fireReport/pkg/e"
)

func TestLimitMiddleware_PerIP(t *testing.T) {
	l := newRateLimiter(config.RateLimitConfig{RPS: 1, Burst: 2, TTL: time.Minute})
	h := l.LimitMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }),
	)

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	for i := 0; i < 2; i++ {
		if code := call("10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, code)
		}
	}
	if code := call("10.0.0.1:1235"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", code)
	}
	if code := call("10.0.0.2:1234"); code != http.StatusOK {
		t.Fatalf("other IP must not be throttled, got %d", code)
	}
}

func TestRateLimiter_SweepDropsIdleVisitors(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newRateLimiter(config.RateLimitConfig{RPS: 1, Burst: 1, TTL: time.Minute})
	l.now = func() time.Time { return now }

	l.getVisitor("a")
	now = now.Add(30 * time.Second)
	l.getVisitor("b")
	now = now.Add(45 * time.Second)
	l.sweep()

	if _, ok := l.visitors["a"]; ok {
		t.Fatalf("idle visitor a should be dropped")
	}
	if _, ok := l.visitors["b"]; !ok {
		t.Fatalf("visitor b should be kept")
	}
}

func TestBindJSON(t *testing.T) {
	var ok domain.PinRequest
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"lat":-34.9,"lng":-71.2}`))
	if err := BindJSON(req, &ok); err != nil {
		t.Fatalf("BindJSON: %v", err)
	}
	if ok.Lat != -34.9 || ok.Lng != -71.2 {
		t.Fatalf("unexpected decode %+v", ok)
	}

	tests := []struct {
		name string
		body string
	}{
		{"broken json", `{"lat":`},
		{"out of range", `{"lat":95,"lng":0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst domain.PinRequest
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			if err := BindJSON(req, &dst); !errors.Is(err, e.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestReadBody_TooLarge(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(make([]byte, MaxBodyBytes+1)))
	if _, err := ReadBody(req); !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
