// Package feature defines the core compatibility data model for Compatscope.
// These types are the shared vocabulary across all modules.
package feature

// StatusCode is the single-letter support status for one browser version.
type StatusCode string

const (
	StatusSupported   StatusCode = "y" // full support
	StatusPartial     StatusCode = "a" // almost/partial support
	StatusUnsupported StatusCode = "n" // not supported
	StatusPolyfill    StatusCode = "p" // polyfill available
	StatusUnknown     StatusCode = "u" // not in the dataset
	StatusPrefixed    StatusCode = "x" // requires vendor prefix
	StatusDisabled    StatusCode = "d" // disabled by default
)

var statusText = map[StatusCode]string{
	StatusSupported:   "Supported",
	StatusPartial:     "Partial support",
	StatusUnsupported: "Not supported",
	StatusPolyfill:    "Polyfill available",
	StatusUnknown:     "Unknown",
	StatusPrefixed:    "Requires vendor prefix",
	StatusDisabled:    "Disabled by default",
}

// Text returns the human-readable description of a status code.
// Unrecognized codes render as "Unknown".
func (c StatusCode) Text() string {
	if t, ok := statusText[c]; ok {
		return t
	}
	return "Unknown"
}

// Maturity is the specification maturity of a feature.
type Maturity string

const (
	MaturityRecommendation Maturity = "rec"
	MaturityCandidate      Maturity = "cr"
	MaturityWorkingDraft   Maturity = "wd"
	MaturityLivingStandard Maturity = "ls"
	MaturityUnofficial     Maturity = "unoff"
	MaturityOther          Maturity = "other"
)

// Feature is one tracked web-platform capability.
// Features are immutable once loaded; a reload replaces the whole database.
type Feature struct {
	ID          string                       `json:"id"`
	Title       string                       `json:"title"`
	Description string                       `json:"description"`
	SpecURL     string                       `json:"spec"`
	Maturity    Maturity                     `json:"status"`
	Categories  []string                     `json:"categories"`
	Keywords    []string                     `json:"keywords"`
	Bugs        []string                     `json:"bugs,omitempty"`
	Notes       string                       `json:"notes,omitempty"`
	Footnotes   map[int]string               `json:"footnotes,omitempty"`
	Stats       map[string]map[string]string `json:"stats"` // browser -> version -> raw status
}

// VersionRange is one contiguous run of versions sharing a primary status
// for a single (feature, browser) pair.
type VersionRange struct {
	Start      string     `json:"start"`
	End        string     `json:"end"`
	Status     StatusCode `json:"status"`
	StatusText string     `json:"status_text"`
}

// Target is a (browser, version) pair to check compatibility against.
type Target struct {
	Browser string `json:"browser"`
	Version string `json:"version"`
}
