package feature

import (
	"strconv"
	"strings"
)

// ParsedStatus is a raw dataset status string decomposed into its parts.
// A raw value like "a x #2" carries a primary code, a vendor-prefix marker
// and footnote references.
type ParsedStatus struct {
	Code           StatusCode `json:"code"`
	PrefixRequired bool       `json:"prefix_required"`
	Footnotes      []int      `json:"footnotes,omitempty"`
}

// ParseStatus decomposes a raw status string. The first whitespace-separated
// token is the primary code; "x" tokens after it mark a required prefix and
// "#N" tokens reference footnotes. An empty string parses as unknown.
func ParseStatus(raw string) ParsedStatus {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ParsedStatus{Code: StatusUnknown}
	}

	ps := ParsedStatus{Code: StatusCode(fields[0])}
	for _, tok := range fields[1:] {
		switch {
		case tok == "x":
			ps.PrefixRequired = true
		case strings.HasPrefix(tok, "#"):
			if n, err := strconv.Atoi(tok[1:]); err == nil {
				ps.Footnotes = append(ps.Footnotes, n)
			}
		}
	}
	// The primary token itself can be the prefix code.
	if ps.Code == StatusPrefixed {
		ps.PrefixRequired = true
	}
	return ps
}

// PrimaryStatus returns just the primary code of a raw status string.
func PrimaryStatus(raw string) StatusCode {
	return ParseStatus(raw).Code
}

// VersionSentinel is the sort key assigned to non-numeric version tokens
// such as preview channels ("TP", "canary"), placing them after every
// released version.
const VersionSentinel = 1e9

// VersionKey converts a version string to its numeric sort key. A range key
// "a-b" uses the lower bound a. The second return is false when the token
// has no numeric interpretation.
func VersionKey(version string) (float64, bool) {
	v := version
	if i := strings.Index(v, "-"); i > 0 {
		v = v[:i]
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// VersionSortKey is VersionKey with non-numeric tokens mapped to
// VersionSentinel so they sort last instead of disappearing.
func VersionSortKey(version string) float64 {
	if k, ok := VersionKey(version); ok {
		return k
	}
	return VersionSentinel
}
