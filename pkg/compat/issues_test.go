package compat_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/compatscope/compatscope/pkg/compat"
)

func TestDetailedIssues(t *testing.T) {
	eng := compat.NewEngine(loadDB(t))

	rep := eng.Analyze(
		[]string{"websockets", "flexbox", "shadowdom"},
		map[string]string{"chrome": "120", "ie": "11"},
	)
	issues := eng.DetailedIssues(rep)

	// websockets is fully supported and must not surface as an issue.
	if len(issues) != 2 {
		t.Fatalf("got %d issues, want 2: %+v", len(issues), issues)
	}

	// CRITICAL sorts ahead of MEDIUM.
	if issues[0].FeatureID != "shadowdom" || issues[0].Severity != compat.SeverityCritical {
		t.Errorf("issues[0] = %s/%s, want shadowdom/CRITICAL", issues[0].FeatureID, issues[0].Severity)
	}
	if issues[1].FeatureID != "flexbox" || issues[1].Severity != compat.SeverityMedium {
		t.Errorf("issues[1] = %s/%s, want flexbox/MEDIUM", issues[1].FeatureID, issues[1].Severity)
	}

	if issues[0].Name != "Shadow DOM (deprecated v0 spec)" {
		t.Errorf("name = %q, want dataset title", issues[0].Name)
	}
	if issues[0].Category != "DOM" {
		t.Errorf("category = %q, want DOM", issues[0].Category)
	}
	if got := issues[0].BrowsersAffected; !reflect.DeepEqual(got, []string{"chrome", "ie"}) {
		t.Errorf("shadowdom browsers affected = %v", got)
	}
	if got := issues[1].BrowsersAffected; !reflect.DeepEqual(got, []string{"ie"}) {
		t.Errorf("flexbox browsers affected = %v", got)
	}
}

func TestDetailedIssuesUnknownFeature(t *testing.T) {
	eng := compat.NewEngine(loadDB(t))

	rep := eng.Analyze([]string{"no-such-feature"}, map[string]string{"chrome": "120"})
	issues := eng.DetailedIssues(rep)
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(issues))
	}
	if issues[0].Name != "no-such-feature" {
		t.Errorf("name = %q, want id fallback", issues[0].Name)
	}
	if issues[0].Workaround != "" {
		t.Errorf("workaround = %q, want empty", issues[0].Workaround)
	}
}

func TestSuggestWorkarounds(t *testing.T) {
	eng := compat.NewEngine(loadDB(t))

	// safari 10.1 reports polyfill support for es6-module.
	rep := eng.Analyze([]string{"es6-module"}, map[string]string{"safari": "10.1", "ie": "11"})
	issues := eng.DetailedIssues(rep)
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(issues))
	}
	w := issues[0].Workaround
	if !strings.Contains(w, "polyfill") {
		t.Errorf("workaround %q missing polyfill hint", w)
	}
	if !strings.Contains(w, "module loader polyfill") {
		t.Errorf("workaround %q missing dataset notes", w)
	}

	// ie 11 needs a vendor prefix for css-grid.
	rep = eng.Analyze([]string{"css-grid"}, map[string]string{"ie": "11"})
	issues = eng.DetailedIssues(rep)
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(issues))
	}
	if !strings.Contains(issues[0].Workaround, "vendor prefix") {
		t.Errorf("workaround %q missing prefix hint", issues[0].Workaround)
	}
}
