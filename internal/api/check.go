package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/compatscope/compatscope/pkg/compat"
	"github.com/compatscope/compatscope/pkg/feature"
	"github.com/compatscope/compatscope/pkg/scoring"
)

// CheckRequest is the body of POST /api/v1/check.
type CheckRequest struct {
	Features []string          `json:"features"`
	Targets  map[string]string `json:"targets"`
}

// CheckResponse pairs a report with its issue listing.
type CheckResponse struct {
	Report *compat.Report `json:"report"`
	Issues []compat.Issue `json:"issues"`
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Targets) == 0 {
		writeError(w, http.StatusBadRequest, "at least one target browser is required")
		return
	}

	db, ok := h.db(w)
	if !ok {
		return
	}

	key := checkCacheKey(req)
	if resp := h.cache.Get(key); resp != nil {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	engine := compat.NewEngine(db)
	rep := engine.Analyze(req.Features, req.Targets)
	resp := &CheckResponse{Report: rep, Issues: engine.DetailedIssues(rep)}
	h.cache.Put(key, resp)
	writeJSON(w, http.StatusOK, resp)
}

// IndexRequest is the body of POST /api/v1/index: an explicit status map,
// as produced by a check or supplied externally.
type IndexRequest struct {
	Statuses map[string]feature.StatusCode `json:"statuses"`
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	var req IndexRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, scoring.CompatibilityIndex(scoring.StatusMap(req.Statuses)))
}

// checkCacheKey builds a canonical key for a check request: sorted features
// and sorted target pairs, hashed.
func checkCacheKey(req CheckRequest) string {
	features := append([]string(nil), req.Features...)
	sort.Strings(features)

	targets := make([]string, 0, len(req.Targets))
	for browser, version := range req.Targets {
		targets = append(targets, browser+"="+version)
	}
	sort.Strings(targets)

	sum := sha256.Sum256([]byte(strings.Join(features, ",") + "|" + strings.Join(targets, ",")))
	return hex.EncodeToString(sum[:])
}
