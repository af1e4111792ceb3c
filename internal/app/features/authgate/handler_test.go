package authgate_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/leadsadmin/internal/app/features/authgate"
	"github.com/dalemusser/leadsadmin/internal/app/system/pinauth"
	"github.com/dalemusser/leadsadmin/internal/app/system/ratelimit"
	"github.com/dalemusser/leadsadmin/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type checkResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func newRouter(h *authgate.Handler) http.Handler {
	r := chi.NewRouter()
	r.Mount("/api/auth", authgate.Routes(h))
	return r
}

func post(router http.Handler, body string) (*testutil.ResponseRecorder, checkResponse) {
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, testutil.NewJSONRequest(http.MethodPost, "/api/auth", body))
	var resp checkResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec, resp
}

func TestHandleCheck(t *testing.T) {
	router := newRouter(authgate.NewHandler(pinauth.New("8642"), nil, zap.NewNop()))

	tests := []struct {
		name    string
		body    string
		status  int
		success bool
	}{
		{"correct pin", `{"pin":"8642"}`, http.StatusOK, true},
		{"wrong pin", `{"pin":"0000"}`, http.StatusUnauthorized, false},
		{"demo fallback rejected", `{"pin":"1234"}`, http.StatusUnauthorized, false},
		{"missing pin", `{}`, http.StatusUnauthorized, false},
		{"malformed body", `{"pin":`, http.StatusUnauthorized, false},
		{"numeric pin", `{"pin":8642}`, http.StatusUnauthorized, false},
		{"null pin", `{"pin":null}`, http.StatusUnauthorized, false},
		{"array pin", `{"pin":["8642"]}`, http.StatusUnauthorized, false},
		{"empty body", ``, http.StatusUnauthorized, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := post(router, tt.body)
			rec.AssertStatus(t, tt.status)
			if resp.Success != tt.success {
				t.Errorf("success = %v, want %v", resp.Success, tt.success)
			}
			if resp.Message == "" {
				t.Error("expected a message")
			}
		})
	}
}

func TestHandleCheck_HashedSecret(t *testing.T) {
	hash, err := pinauth.Hash("975310")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	router := newRouter(authgate.NewHandler(pinauth.New(hash), nil, zap.NewNop()))

	rec, resp := post(router, `{"pin":"975310"}`)
	rec.AssertStatus(t, http.StatusOK)
	if !resp.Success {
		t.Error("expected success for hashed secret")
	}
}

func TestHandleCheck_RateLimited(t *testing.T) {
	limiter := ratelimit.New(2, time.Minute)
	defer limiter.Stop()
	router := newRouter(authgate.NewHandler(pinauth.New("8642"), limiter, zap.NewNop()))

	for i := 0; i < 2; i++ {
		rec, _ := post(router, `{"pin":"0000"}`)
		rec.AssertStatus(t, http.StatusUnauthorized)
	}
	rec, resp := post(router, `{"pin":"8642"}`)
	rec.AssertStatus(t, http.StatusTooManyRequests)
	if resp.Success {
		t.Error("rate-limited response must not report success")
	}
}
