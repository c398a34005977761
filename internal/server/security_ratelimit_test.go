package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	const limit = 50
	detector := NewSuspiciousActivityDetector(limit)
	handler := SecurityLoggingMiddleware(nil, detector)(okHandler())

	ip := "192.168.1.100"
	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = ip + ":1234"

	for i := 0; i < limit; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, rec.Code)
		}
	}

	// Next request should be blocked
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429 Too Many Requests, got %d", rec.Code)
	}

	detector.mu.Lock()
	count := detector.requestCountByIP[ip]
	detector.mu.Unlock()

	if count != limit+1 {
		t.Errorf("expected count %d, got %d", limit+1, count)
	}
}

func TestSecurityLoggingMiddleware_LoopbackNotLimited(t *testing.T) {
	detector := NewSuspiciousActivityDetector(5)
	handler := SecurityLoggingMiddleware(nil, detector)(okHandler())

	for _, addr := range []string{"127.0.0.1:5000", "[::1]:5000"} {
		req := httptest.NewRequest("PUT", "/api/v1/inventory", nil)
		req.RemoteAddr = addr
		for i := 0; i < 100; i++ {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Fatalf("%s request %d got status %d", addr, i, rec.Code)
			}
		}
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	if len(detector.requestCountByIP) != 0 {
		t.Errorf("loopback requests should not be counted, got %v", detector.requestCountByIP)
	}
}

func TestSecurityLoggingMiddleware_ZeroLimitDisables(t *testing.T) {
	handler := SecurityLoggingMiddleware(nil, NewSuspiciousActivityDetector(0))(okHandler())

	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "10.0.0.7:1234"
	for i := 0; i < 200; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d got status %d", i, rec.Code)
		}
	}
}
