// Package api provides the HTTP API for the store simulation.
// GET endpoints are public (read-only observation).
// POST endpoints require a bearer token (management control plane).
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mkweon/grandmall/internal/catalog"
	"github.com/mkweon/grandmall/internal/persistence"
	"github.com/mkweon/grandmall/internal/sim"
)

// Server serves the store state over HTTP.
type Server struct {
	State    *sim.State
	DB       *persistence.DB
	Addr     string
	AdminKey string // Bearer token for POST endpoints. Empty = POST disabled.

	hub *Hub
}

// Start begins serving the HTTP API in a goroutine and returns the
// websocket hub so the tick loop can broadcast state.
func (s *Server) Start() *Hub {
	s.hub = NewHub()

	// Save and reset touch the database; keep them off the hot path.
	saveLimiter := NewRateLimiter(30, time.Minute)

	mux := http.NewServeMux()

	// Public endpoints.
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/dashboard", s.handleDashboard)
	mux.HandleFunc("/api/v1/log", s.handleLog)
	mux.HandleFunc("/api/v1/voc", s.handleVOC)
	mux.HandleFunc("/api/v1/catalog", s.handleCatalog)
	mux.HandleFunc("/api/v1/history", s.handleHistory)
	mux.HandleFunc("/api/v1/history/", s.handleHistoryDay)

	// Realtime state stream (websocket).
	mux.HandleFunc("/api/v1/stream", s.hub.HandleStream)

	// Management endpoints (POST, require bearer token).
	mux.HandleFunc("/api/v1/build", s.adminOnly(s.handleBuild))
	mux.HandleFunc("/api/v1/invest", s.adminOnly(s.handleInvest))
	mux.HandleFunc("/api/v1/demolish", s.adminOnly(s.handleDemolish))
	mux.HandleFunc("/api/v1/floor", s.adminOnly(s.handleFloor))
	mux.HandleFunc("/api/v1/campaign", s.adminOnly(s.handleCampaign))
	mux.HandleFunc("/api/v1/research", s.adminOnly(s.handleResearch))
	mux.HandleFunc("/api/v1/hire", s.adminOnly(s.handleHire))
	mux.HandleFunc("/api/v1/fire", s.adminOnly(s.handleFire))
	mux.HandleFunc("/api/v1/assign", s.adminOnly(s.handleAssign))
	mux.HandleFunc("/api/v1/pause", s.adminOnly(s.handlePause))
	mux.HandleFunc("/api/v1/speed", s.adminOnly(s.handleSpeed))
	mux.HandleFunc("/api/v1/delegation", s.adminOnly(s.handleDelegation))
	mux.HandleFunc("/api/v1/save", s.adminOnly(RateLimitMiddleware(saveLimiter, s.handleSave)))
	mux.HandleFunc("/api/v1/reset", s.adminOnly(RateLimitMiddleware(saveLimiter, s.handleReset)))

	slog.Info("HTTP API starting", "addr", s.Addr, "admin_auth", s.AdminKey != "")

	go func() {
		handler := corsMiddleware(mux)
		if err := http.ListenAndServe(s.Addr, handler); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	return s.hub
}

// corsMiddleware adds CORS headers for allowed frontend origins.
// Set CORS_ORIGINS env var to a comma-separated list of allowed origins.
// Localhost dev servers are always allowed.
func corsMiddleware(next http.Handler) http.Handler {
	allowed := allowedOrigins()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func allowedOrigins() map[string]bool {
	allowed := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:4173": true,
		"http://localhost:3000": true,
	}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowed[origin] = true
			}
		}
	}
	return allowed
}

// adminOnly wraps a handler to require bearer token auth on POST requests.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if s.AdminKey == "" {
			http.Error(w, "management endpoints disabled (no admin token set)", http.StatusForbidden)
			return
		}
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") != s.AdminKey {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.State.Status())
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"financials":       s.State.Financials(),
		"incomeByCategory": s.State.IncomeByCategory(),
		"incomeByShop":     s.State.IncomeByShopType(),
		"floors":           s.State.FloorReport(),
		"popularity":       s.State.PopularityRanking(),
	})
}

func (s *Server) handleLog(w http.ResponseWriter, r *http.Request) {
	entries := s.State.LogView()
	if v := r.URL.Query().Get("limit"); v != "" {
		// Entries are ordered oldest to newest; the limit keeps the tail.
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n < len(entries) {
			entries = entries[len(entries)-n:]
		}
	}
	writeJSON(w, entries)
}

func (s *Server) handleVOC(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.State.VOCView())
}

// handleCatalog exposes the static definitions so clients can render
// build menus without hardcoding them.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"shops":      catalog.Shops,
		"synergies":  catalog.Synergies,
		"research":   catalog.ResearchItems,
		"campaigns":  catalog.MarketingCampaigns,
		"events":     catalog.GameEvents,
		"quests":     catalog.Quests,
		"staffRoles": catalog.StaffRoles,
		"ranks":      catalog.StoreRanks,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "database not available", http.StatusServiceUnavailable)
		return
	}
	days, err := s.DB.HistoryDays(60)
	if err != nil {
		slog.Error("history list failed", "error", err)
		http.Error(w, "history unavailable", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"days": days})
}

func (s *Server) handleHistoryDay(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "database not available", http.StatusServiceUnavailable)
		return
	}
	day, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/v1/history/"))
	if err != nil {
		http.Error(w, "usage: /api/v1/history/:day", http.StatusBadRequest)
		return
	}
	snap, err := s.DB.HistorySnapshot(day)
	if err == persistence.ErrNoSave {
		http.Error(w, "no snapshot for that day", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("history load failed", "day", day, "error", err)
		http.Error(w, "history unavailable", http.StatusInternalServerError)
		return
	}
	writeJSON(w, snap)
}

func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ShopType catalog.ShopType `json:"shopType"`
		Floor    int              `json:"floor"`
		Slot     int              `json:"slot"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	s.respond(w, s.State.BuildShop(req.ShopType, req.Floor, req.Slot, false))
}

func (s *Server) handleInvest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Floor int `json:"floor"`
		Slot  int `json:"slot"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	s.respond(w, s.State.InvestShop(req.Floor, req.Slot, false))
}

func (s *Server) handleDemolish(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Floor int `json:"floor"`
		Slot  int `json:"slot"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	s.respond(w, s.State.DemolishShop(req.Floor, req.Slot))
}

func (s *Server) handleFloor(w http.ResponseWriter, r *http.Request) {
	s.respond(w, s.State.AddFloor(false))
}

func (s *Server) handleCampaign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	s.respond(w, s.State.StartCampaign(req.ID, false))
}

func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	s.respond(w, s.State.UnlockResearch(req.ID, false))
}

func (s *Server) handleHire(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ApplicantID string `json:"applicantId"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	s.respond(w, s.State.HireStaff(req.ApplicantID, false))
}

func (s *Server) handleFire(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StaffID string `json:"staffId"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	s.respond(w, s.State.FireStaff(req.StaffID))
}

func (s *Server) handleAssign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StaffID string `json:"staffId"`
		FloorID string `json:"floorId"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	s.respond(w, s.State.AssignStaff(req.StaffID, req.FloorID, false))
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Paused bool `json:"paused"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	s.State.SetPaused(req.Paused)
	s.respond(w, true)
}

func (s *Server) handleSpeed(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Speed int `json:"speed"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	s.State.SetSpeed(req.Speed)
	s.respond(w, true)
}

func (s *Server) handleDelegation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if !readJSON(w, r, &req) {
		return
	}
	s.State.SetDelegation(req.Enabled)
	s.respond(w, true)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "database not available", http.StatusServiceUnavailable)
		return
	}
	if err := s.DB.SaveSnapshot(s.State.ToSnapshot()); err != nil {
		slog.Error("manual save failed", "error", err)
		http.Error(w, "save failed", http.StatusInternalServerError)
		return
	}
	s.respond(w, true)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.State.Reset()
	if s.DB != nil {
		if err := s.DB.SaveSnapshot(s.State.ToSnapshot()); err != nil {
			slog.Error("post-reset save failed", "error", err)
		}
	}
	s.respond(w, true)
}

// respond writes the standard action result. Rejected actions already put
// the reason in the game log, so the newest entry doubles as the detail.
func (s *Server) respond(w http.ResponseWriter, ok bool) {
	result := map[string]any{"success": ok}
	if entries := s.State.LogView(); len(entries) > 0 {
		result["details"] = entries[len(entries)-1].Text
	}
	writeJSON(w, result)
}

func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
