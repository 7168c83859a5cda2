// Package api implements the Compatscope query API. It serves read-only
// lookup, analysis, and scoring endpoints over one loaded dataset, plus an
// admin reload endpoint that swaps in a fresh dataset atomically.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/compatscope/compatscope/pkg/feature"
)

// Handler is the top-level API handler for the compatscoped service.
type Handler struct {
	store *feature.Store
	cache *ReportCache
}

// NewHandler creates a new API handler.
func NewHandler(store *feature.Store, cache *ReportCache) *Handler {
	if cache == nil {
		cache = NewReportCacheFromEnv()
	}
	return &Handler{store: store, cache: cache}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Read endpoints
	mux.HandleFunc("GET /api/v1/features", h.handleListFeatures)
	mux.HandleFunc("GET /api/v1/features/{featureID}", h.handleGetFeature)
	mux.HandleFunc("GET /api/v1/features/{featureID}/summary", h.handleSummary)
	mux.HandleFunc("GET /api/v1/features/{featureID}/trend", h.handleTrend)
	mux.HandleFunc("GET /api/v1/search", h.handleSearch)
	mux.HandleFunc("GET /api/v1/browsers/{browser}/versions", h.handleBrowserVersions)

	// Analysis endpoints
	mux.HandleFunc("POST /api/v1/check", h.handleCheck)
	mux.HandleFunc("POST /api/v1/index", h.handleIndex)

	// Admin endpoints (auth-protected by middleware)
	mux.HandleFunc("POST /api/v1/admin/reload", h.handleReload)
}

// db returns the current database, loading it on first use.
func (h *Handler) db(w http.ResponseWriter) (*feature.Database, bool) {
	db, err := h.store.Current()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "dataset not loaded: "+err.Error())
		return nil, false
	}
	return db, true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
