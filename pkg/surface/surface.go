// Package surface defines output rendering for Compatscope reports.
// Implementations handle different output targets: terminal, JSON, markdown.
package surface

import (
	"io"

	"github.com/compatscope/compatscope/pkg/compat"
)

// Renderer produces formatted output from a compatibility report and its
// issue listing.
type Renderer interface {
	// Render writes the formatted report to the writer.
	Render(w io.Writer, rep *compat.Report, issues []compat.Issue) error
}

// ForFormat returns the renderer for a format name; unknown names fall
// back to the terminal renderer.
func ForFormat(format string) Renderer {
	switch format {
	case "json":
		return &JSONRenderer{}
	case "markdown":
		return &MarkdownRenderer{}
	default:
		return &TerminalRenderer{}
	}
}
