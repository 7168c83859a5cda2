package feature

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// Database is the indexed, read-only view of one loaded dataset. It is
// never mutated after construction; Reload on a Store builds a fresh
// instance and swaps it in wholesale.
type Database struct {
	features map[string]*Feature
	index    map[string]map[string]bool // word -> set of feature ids

	// versions-per-browser is the only derived state worth memoizing;
	// safe because the dataset never changes post-load.
	versionsMu sync.Mutex
	versions   map[string][]string
}

// Common words excluded from the search index.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "for": true, "in": true,
	"of": true, "on": true, "the": true, "to": true, "with": true,
}

func newDatabase(features map[string]*Feature) *Database {
	db := &Database{
		features: features,
		index:    make(map[string]map[string]bool),
		versions: make(map[string][]string),
	}
	for id, f := range features {
		for _, w := range indexWords(f) {
			if db.index[w] == nil {
				db.index[w] = make(map[string]bool)
			}
			db.index[w][id] = true
		}
	}
	return db
}

func indexWords(f *Feature) []string {
	var words []string
	add := func(s string) {
		for _, w := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
			return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
		}) {
			if !stopWords[w] {
				words = append(words, w)
			}
		}
	}
	add(f.ID)
	add(f.Title)
	for _, k := range f.Keywords {
		add(k)
	}
	return words
}

// Len returns the number of features in the dataset.
func (db *Database) Len() int {
	return len(db.features)
}

// Get looks up a feature by id.
func (db *Database) Get(id string) (*Feature, bool) {
	f, ok := db.features[id]
	return f, ok
}

// IDs returns all feature ids, sorted.
func (db *Database) IDs() []string {
	ids := make([]string, 0, len(db.features))
	for id := range db.features {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Search finds features matching a case-insensitive query. Matches are the
// union of exact id, indexed word, id substring, and title/description
// substring hits, deduplicated and sorted by id.
func (db *Database) Search(query string) []*Feature {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	hits := make(map[string]bool)
	if _, ok := db.features[q]; ok {
		hits[q] = true
	}
	for _, w := range strings.Fields(q) {
		for id := range db.index[w] {
			hits[id] = true
		}
	}
	for id, f := range db.features {
		if hits[id] {
			continue
		}
		if strings.Contains(strings.ToLower(id), q) ||
			strings.Contains(strings.ToLower(f.Title), q) ||
			strings.Contains(strings.ToLower(f.Description), q) {
			hits[id] = true
		}
	}

	ids := make([]string, 0, len(hits))
	for id := range hits {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	results := make([]*Feature, 0, len(ids))
	for _, id := range ids {
		results = append(results, db.features[id])
	}
	return results
}

// VersionsForBrowser returns every version key recorded for a browser
// across all features, sorted by numeric version key (ties by raw string).
// The result is memoized per database instance.
func (db *Database) VersionsForBrowser(browser string) []string {
	db.versionsMu.Lock()
	defer db.versionsMu.Unlock()

	if vs, ok := db.versions[browser]; ok {
		return vs
	}

	seen := make(map[string]bool)
	for _, f := range db.features {
		for v := range f.Stats[browser] {
			seen[v] = true
		}
	}
	vs := make([]string, 0, len(seen))
	for v := range seen {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool {
		ki, kj := VersionSortKey(vs[i]), VersionSortKey(vs[j])
		if ki != kj {
			return ki < kj
		}
		return vs[i] < vs[j]
	})
	db.versions[browser] = vs
	return vs
}

// Store owns the load-once/read-many database lifecycle. The first Current
// call loads lazily; Reload builds a brand-new Database and atomically
// swaps it in, so holders of the old instance keep a consistent view.
type Store struct {
	loader   func() (*Database, error)
	current  atomic.Pointer[Database]
	reloadMu sync.Mutex
}

// NewStore creates a Store around a loader function. The loader runs once
// per (re)load and must return a fully constructed database.
func NewStore(loader func() (*Database, error)) *Store {
	return &Store{loader: loader}
}

// Current returns the loaded database, loading it on first use.
func (s *Store) Current() (*Database, error) {
	if db := s.current.Load(); db != nil {
		return db, nil
	}
	return s.Reload()
}

// Reload loads a fresh database and swaps it in. On failure the previous
// database, if any, stays in place. Concurrent reloads are serialized.
func (s *Store) Reload() (*Database, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	db, err := s.loader()
	if err != nil {
		return nil, err
	}
	s.current.Store(db)
	return db, nil
}
