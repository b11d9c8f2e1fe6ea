package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mkweon/grandmall/internal/entropy"
	"github.com/mkweon/grandmall/internal/sim"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	st := sim.New(entropy.NewSeeded(1))
	st.EnsureRival()
	return &Server{State: st, AdminKey: "sekrit"}
}

func TestAdminOnlyAuthMatrix(t *testing.T) {
	s := newTestServer(t)
	h := s.adminOnly(s.handlePause)

	cases := []struct {
		name   string
		method string
		auth   string
		want   int
	}{
		{"get rejected", http.MethodGet, "Bearer sekrit", http.StatusMethodNotAllowed},
		{"no token", http.MethodPost, "", http.StatusUnauthorized},
		{"wrong token", http.MethodPost, "Bearer wrong", http.StatusUnauthorized},
		{"wrong scheme", http.MethodPost, "Basic sekrit", http.StatusUnauthorized},
		{"valid", http.MethodPost, "Bearer sekrit", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/api/v1/pause", strings.NewReader(`{"paused":true}`))
			if tc.auth != "" {
				req.Header.Set("Authorization", tc.auth)
			}
			rec := httptest.NewRecorder()
			h(rec, req)
			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestAdminOnlyDisabledWithoutKey(t *testing.T) {
	s := newTestServer(t)
	s.AdminKey = ""
	h := s.adminOnly(s.handlePause)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pause", strings.NewReader(`{"paused":true}`))
	req.Header.Set("Authorization", "Bearer anything")
	rec := httptest.NewRecorder()
	h(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403 when no admin key is configured", rec.Code)
	}
}

func TestBuildEndpointAppliesAction(t *testing.T) {
	s := newTestServer(t)
	body := `{"shopType":"BAKERY","floor":0,"slot":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/build", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.handleBuild(rec, req)

	var resp struct {
		Success bool   `json:"success"`
		Details string `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success {
		t.Fatalf("build rejected: %s", resp.Details)
	}
	if s.State.Status().Shops != 1 {
		t.Error("shop count did not change")
	}
}

func TestBuildEndpointRejectsBadJSON(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/build", strings.NewReader("{oops"))
	rec := httptest.NewRecorder()
	s.handleBuild(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRejectedActionReportsReason(t *testing.T) {
	s := newTestServer(t)
	// Slot 99 is out of range.
	body := `{"shopType":"BAKERY","floor":0,"slot":99}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/build", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.handleBuild(rec, req)

	var resp struct {
		Success bool   `json:"success"`
		Details string `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Success {
		t.Fatal("out-of-range build accepted")
	}
	if resp.Details == "" {
		t.Error("rejection carried no detail message")
	}
}

func TestStatusEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.handleStatus(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

	var status sim.StatusView
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatal(err)
	}
	if status.Day != 1 {
		t.Errorf("day = %d, want 1 on a fresh game", status.Day)
	}
}

func TestLogLimitKeepsNewestEntries(t *testing.T) {
	s := newTestServer(t)
	s.State.BuildShop("BAKERY", 0, 0, false)
	s.State.BuildShop("BOOKSTORE", 0, 1, false)

	full := s.State.LogView()
	if len(full) < 2 {
		t.Fatalf("expected at least 2 log entries, got %d", len(full))
	}

	rec := httptest.NewRecorder()
	s.handleLog(rec, httptest.NewRequest(http.MethodGet, "/api/v1/log?limit=1", nil))

	var entries []sim.LogEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Text != full[len(full)-1].Text {
		t.Errorf("limit kept %q, want the newest entry %q", entries[0].Text, full[len(full)-1].Text)
	}
}

func TestRateLimiterBlocksAfterBudget(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	h := RateLimitMiddleware(limiter, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodPost, "/api/v1/save", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d blocked early: %d", i+1, rec.Code)
		}
	}
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/api/v1/save", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429 over budget", rec.Code)
	}
}
