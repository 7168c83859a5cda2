package feature_test

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/compatscope/compatscope/pkg/feature"
)

func loadTestDB(t *testing.T) *feature.Database {
	t.Helper()
	db, err := feature.Load("../../testdata/features.json", "../../testdata/features")
	if err != nil {
		t.Fatalf("loading test dataset: %v", err)
	}
	return db
}

func TestLoadMergesDetailFiles(t *testing.T) {
	db := loadTestDB(t)

	// Bulk features plus the one valid detail file; broken.json is skipped.
	if db.Len() != 6 {
		t.Errorf("Len() = %d, want 6", db.Len())
	}
	if _, ok := db.Get("offline-apps"); !ok {
		t.Error("detail file offline-apps.json should be loaded under its stem")
	}
	if _, ok := db.Get("broken"); ok {
		t.Error("malformed detail file must be skipped, not loaded")
	}
}

func TestLoadMissingBulk(t *testing.T) {
	_, err := feature.Load(filepath.Join(t.TempDir(), "nope.json"), "")
	if !errors.Is(err, feature.ErrDataUnavailable) {
		t.Errorf("missing bulk file: err = %v, want ErrDataUnavailable", err)
	}
}

func TestLoadCorruptBulk(t *testing.T) {
	_, err := feature.Load("../../testdata/corrupt.json", "")
	if !errors.Is(err, feature.ErrDataCorrupt) {
		t.Errorf("corrupt bulk file: err = %v, want ErrDataCorrupt", err)
	}
}

func TestFeatureFields(t *testing.T) {
	db := loadTestDB(t)
	f, ok := db.Get("flexbox")
	if !ok {
		t.Fatal("flexbox not found")
	}
	if f.Maturity != feature.MaturityCandidate {
		t.Errorf("Maturity = %q, want cr", f.Maturity)
	}
	if want := []string{"flex", "flexible", "box"}; !reflect.DeepEqual(f.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", f.Keywords, want)
	}
	if len(f.Bugs) != 1 {
		t.Errorf("Bugs = %v, want one entry", f.Bugs)
	}
	if f.Footnotes[1] == "" {
		t.Error("footnote 1 should carry text")
	}
}

func TestSearch(t *testing.T) {
	db := loadTestDB(t)

	tests := []struct {
		query string
		want  string // id that must be among the results
	}{
		{"flexbox", "flexbox"},   // exact id
		{"grid", "css-grid"},     // indexed keyword
		{"sockets", "websockets"}, // id substring
		{"offline", "offline-apps"},
		{"bidirectional", "websockets"}, // description substring
		{"FLEX", "flexbox"},             // case-insensitive
	}
	for _, tt := range tests {
		found := false
		for _, f := range db.Search(tt.query) {
			if f.ID == tt.want {
				found = true
			}
		}
		if !found {
			t.Errorf("Search(%q) should include %s", tt.query, tt.want)
		}
	}

	if got := db.Search("zzzznothing"); len(got) != 0 {
		t.Errorf("Search(no match) = %d results, want 0", len(got))
	}
}

func TestSearchDeduplicated(t *testing.T) {
	db := loadTestDB(t)
	// "flex" matches flexbox by id substring, keyword, and title word.
	results := db.Search("flex")
	seen := map[string]int{}
	for _, f := range results {
		seen[f.ID]++
	}
	if seen["flexbox"] != 1 {
		t.Errorf("flexbox appears %d times, want exactly once", seen["flexbox"])
	}
}

func TestVersionsForBrowser(t *testing.T) {
	db := loadTestDB(t)

	versions := db.VersionsForBrowser("safari")
	if len(versions) == 0 {
		t.Fatal("expected safari versions")
	}
	// Sorted ascending by numeric key, preview channel last.
	if versions[len(versions)-1] != "TP" {
		t.Errorf("last version = %q, want TP (sentinel sorts last)", versions[len(versions)-1])
	}
	for i := 1; i < len(versions)-1; i++ {
		if feature.VersionSortKey(versions[i-1]) > feature.VersionSortKey(versions[i]) {
			t.Errorf("versions out of order: %q before %q", versions[i-1], versions[i])
		}
	}

	// Memoized: repeated calls return the same slice contents.
	again := db.VersionsForBrowser("safari")
	if !reflect.DeepEqual(versions, again) {
		t.Error("memoized result changed between calls")
	}
}

func TestStoreLazyLoadAndReload(t *testing.T) {
	loads := 0
	store := feature.NewStore(func() (*feature.Database, error) {
		loads++
		return feature.Load("../../testdata/features.json", "")
	})

	db1, err := store.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	db2, err := store.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if loads != 1 {
		t.Errorf("lazy load ran %d times, want 1", loads)
	}
	if db1 != db2 {
		t.Error("Current must return the same instance until reload")
	}

	db3, err := store.Reload()
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if db3 == db1 {
		t.Error("Reload must build a fresh instance")
	}
	if loads != 2 {
		t.Errorf("loads = %d after reload, want 2", loads)
	}
}

func TestStoreReloadFailureKeepsOld(t *testing.T) {
	fail := false
	store := feature.NewStore(func() (*feature.Database, error) {
		if fail {
			return nil, feature.ErrDataUnavailable
		}
		return feature.Load("../../testdata/features.json", "")
	})

	db1, err := store.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}

	fail = true
	if _, err := store.Reload(); err == nil {
		t.Fatal("Reload should fail")
	}
	db2, err := store.Current()
	if err != nil {
		t.Fatalf("Current after failed reload: %v", err)
	}
	if db2 != db1 {
		t.Error("failed reload must keep the previous database")
	}
}
