package feature

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Load failure taxonomy. A missing bulk document and a malformed one are
// distinct conditions; both leave the caller without a database.
var (
	ErrDataUnavailable = errors.New("feature dataset unavailable")
	ErrDataCorrupt     = errors.New("feature dataset corrupt")
)

// featureDoc is the on-disk shape of one feature entry. Keywords arrive as
// a single comma-separated string and bugs as objects with a description.
type featureDoc struct {
	Title       string                       `json:"title"`
	Description string                       `json:"description"`
	Spec        string                       `json:"spec"`
	Status      string                       `json:"status"`
	Categories  []string                     `json:"categories"`
	Keywords    string                       `json:"keywords"`
	Bugs        []bugDoc                     `json:"bugs"`
	Notes       string                       `json:"notes"`
	NotesByNum  map[string]string            `json:"notes_by_num"`
	Stats       map[string]map[string]string `json:"stats"`
}

type bugDoc struct {
	Description string `json:"description"`
}

// Load reads the bulk dataset document plus an optional directory of
// per-feature detail files and builds an indexed Database.
//
// A missing bulk file fails with ErrDataUnavailable and a malformed one
// with ErrDataCorrupt. A detail file that is missing or malformed is logged
// and skipped; the load still succeeds with a partial dataset.
func Load(bulkPath, detailDir string) (*Database, error) {
	data, err := os.ReadFile(bulkPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, bulkPath)
		}
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	details := map[string][]byte{}
	if detailDir != "" {
		entries, err := os.ReadDir(detailDir)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading detail directory: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			path := filepath.Join(detailDir, e.Name())
			b, err := os.ReadFile(path)
			if err != nil {
				log.Printf("skipping feature file %s: %v", path, err)
				continue
			}
			details[strings.TrimSuffix(e.Name(), ".json")] = b
		}
	}

	return LoadBytes(data, details)
}

// LoadBytes builds a Database from raw document bytes. details maps a
// feature id (the filename stem) to that feature's detail document; a
// malformed detail entry is logged and skipped.
func LoadBytes(bulk []byte, details map[string][]byte) (*Database, error) {
	var docs map[string]featureDoc
	if err := json.Unmarshal(bulk, &docs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataCorrupt, err)
	}

	features := make(map[string]*Feature, len(docs))
	for id, doc := range docs {
		features[id] = buildFeature(id, doc)
	}

	for id, raw := range details {
		var doc featureDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			log.Printf("skipping feature %s: %v", id, err)
			continue
		}
		features[id] = buildFeature(id, doc)
	}

	return newDatabase(features), nil
}

func buildFeature(id string, doc featureDoc) *Feature {
	f := &Feature{
		ID:          id,
		Title:       doc.Title,
		Description: doc.Description,
		SpecURL:     doc.Spec,
		Maturity:    parseMaturity(doc.Status),
		Categories:  doc.Categories,
		Keywords:    splitKeywords(doc.Keywords),
		Notes:       doc.Notes,
		Stats:       doc.Stats,
	}
	if f.Stats == nil {
		f.Stats = map[string]map[string]string{}
	}
	for _, b := range doc.Bugs {
		if b.Description != "" {
			f.Bugs = append(f.Bugs, b.Description)
		}
	}
	if len(doc.NotesByNum) > 0 {
		f.Footnotes = make(map[int]string, len(doc.NotesByNum))
		for num, text := range doc.NotesByNum {
			if n, err := strconv.Atoi(num); err == nil {
				f.Footnotes[n] = text
			}
		}
	}
	return f
}

func parseMaturity(s string) Maturity {
	switch m := Maturity(strings.ToLower(strings.TrimSpace(s))); m {
	case MaturityRecommendation, MaturityCandidate, MaturityWorkingDraft,
		MaturityLivingStandard, MaturityUnofficial:
		return m
	default:
		return MaturityOther
	}
}

func splitKeywords(s string) []string {
	var kws []string
	for _, k := range strings.Split(s, ",") {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			kws = append(kws, k)
		}
	}
	return kws
}
