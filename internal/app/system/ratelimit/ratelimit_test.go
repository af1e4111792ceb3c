package ratelimit_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/leadsadmin/internal/app/system/ratelimit"
)

func TestAllow_WithinAndOverLimit(t *testing.T) {
	l := ratelimit.New(3, time.Minute)
	defer l.Stop()

	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Error("4th request should be limited")
	}
	if !l.Allow("10.0.0.2") {
		t.Error("other keys have their own window")
	}
	if got := l.Remaining("10.0.0.1"); got != 0 {
		t.Errorf("Remaining = %d, want 0", got)
	}
	if got := l.Remaining("unknown"); got != 3 {
		t.Errorf("Remaining(unknown) = %d, want 3", got)
	}
}

func TestAllow_WindowExpires(t *testing.T) {
	l := ratelimit.New(1, 20*time.Millisecond)
	defer l.Stop()

	if !l.Allow("k") {
		t.Fatal("first request should pass")
	}
	if l.Allow("k") {
		t.Fatal("second request should be limited")
	}
	time.Sleep(40 * time.Millisecond)
	if !l.Allow("k") {
		t.Error("request after window should pass")
	}
}

func TestMiddleware(t *testing.T) {
	l := ratelimit.New(1, time.Minute)
	defer l.Stop()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	reject := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}
	h := l.Middleware(reject)(next)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth", nil)
		req.RemoteAddr = "192.0.2.7:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("codes = %v, want [200 429]", codes)
	}
}

func TestClientIP_IgnoresForwardingHeaders(t *testing.T) {
	tests := []struct {
		name   string
		remote string
		want   string
	}{
		{"remote with port", "198.51.100.4:1234", "198.51.100.4"},
		{"remote without port", "198.51.100.4", "198.51.100.4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			r.Header.Set("X-Forwarded-For", "203.0.113.1")
			r.Header.Set("X-Real-IP", "203.0.113.9")
			if got := ratelimit.ClientIP(r); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProxiedClientIP(t *testing.T) {
	tests := []struct {
		name   string
		xff    []string
		xri    string
		remote string
		want   string
	}{
		{"last forwarded hop", []string{"203.0.113.1, 192.0.2.7"}, "", "10.0.0.2:80", "192.0.2.7"},
		{"last header line", []string{"203.0.113.1", "192.0.2.8"}, "", "10.0.0.2:80", "192.0.2.8"},
		{"real ip", nil, "203.0.113.9", "10.0.0.2:80", "203.0.113.9"},
		{"no headers", nil, "", "198.51.100.4:1234", "198.51.100.4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for _, v := range tt.xff {
				r.Header.Add("X-Forwarded-For", v)
			}
			if tt.xri != "" {
				r.Header.Set("X-Real-IP", tt.xri)
			}
			if got := ratelimit.ProxiedClientIP(r); got != tt.want {
				t.Errorf("ProxiedClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMiddleware_SpoofedForwardedForStillLimited(t *testing.T) {
	l := ratelimit.New(1, time.Minute)
	defer l.Stop()

	h := l.Middleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var codes []int
	for _, spoof := range []string{"203.0.113.1", "203.0.113.2", "203.0.113.3"} {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.RemoteAddr = "198.51.100.4:5000"
		r.Header.Set("X-Forwarded-For", spoof)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		codes = append(codes, rec.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v, want [200 429 429]", codes)
	}
}

func TestMiddleware_TrustProxyKeysByForwardedHop(t *testing.T) {
	l := ratelimit.New(1, time.Minute)
	defer l.Stop()
	l.TrustProxy = true

	h := l.Middleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, client := range []string{"192.0.2.1", "192.0.2.2"} {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		r.RemoteAddr = "10.0.0.2:80"
		r.Header.Set("X-Forwarded-For", client)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		if rec.Code != http.StatusOK {
			t.Errorf("client %s: status %d, want 200", client, rec.Code)
		}
	}
}
