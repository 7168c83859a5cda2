package api

import (
	"log"
	"net/http"

	"github.com/compatscope/compatscope/pkg/feature"
	"github.com/compatscope/compatscope/pkg/scoring"
	"github.com/compatscope/compatscope/pkg/support"
)

func (h *Handler) handleListFeatures(w http.ResponseWriter, r *http.Request) {
	db, ok := h.db(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":    db.Len(),
		"features": db.IDs(),
	})
}

func (h *Handler) handleGetFeature(w http.ResponseWriter, r *http.Request) {
	db, ok := h.db(w)
	if !ok {
		return
	}
	f, ok := db.Get(r.PathValue("featureID"))
	if !ok {
		writeError(w, http.StatusNotFound, "feature not found")
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	db, ok := h.db(w)
	if !ok {
		return
	}
	id := r.PathValue("featureID")
	if _, ok := db.Get(id); !ok {
		writeError(w, http.StatusNotFound, "feature not found")
		return
	}
	writeJSON(w, http.StatusOK, support.NewResolver(db).SupportSummary(id))
}

// handleTrend scores how one browser's support for a feature evolved
// across its recorded version history.
func (h *Handler) handleTrend(w http.ResponseWriter, r *http.Request) {
	db, ok := h.db(w)
	if !ok {
		return
	}
	id := r.PathValue("featureID")
	f, ok := db.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "feature not found")
		return
	}
	browser := r.URL.Query().Get("browser")
	if browser == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter browser")
		return
	}

	history := make(map[string]scoring.StatusMap, len(f.Stats[browser]))
	for v, raw := range f.Stats[browser] {
		history[v] = scoring.StatusMap{browser: feature.PrimaryStatus(raw)}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"feature": id,
		"browser": browser,
		"trend":   scoring.TrendScore(history),
	})
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	db, ok := h.db(w)
	if !ok {
		return
	}
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}
	results := db.Search(q)
	ids := make([]string, 0, len(results))
	for _, f := range results {
		ids = append(ids, f.ID)
	}
	writeJSON(w, http.StatusOK, map[string]any{"query": q, "results": ids})
}

func (h *Handler) handleBrowserVersions(w http.ResponseWriter, r *http.Request) {
	db, ok := h.db(w)
	if !ok {
		return
	}
	browser := r.PathValue("browser")
	versions := db.VersionsForBrowser(browser)
	writeJSON(w, http.StatusOK, map[string]any{"browser": browser, "versions": versions})
}

func (h *Handler) handleReload(w http.ResponseWriter, r *http.Request) {
	db, err := h.store.Reload()
	if err != nil {
		log.Printf("reload failed: %v", err)
		writeError(w, http.StatusInternalServerError, "reload failed: "+err.Error())
		return
	}
	h.cache.Clear()
	writeJSON(w, http.StatusOK, map[string]any{"status": "reloaded", "features": db.Len()})
}
