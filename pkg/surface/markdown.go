package surface

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/compatscope/compatscope/pkg/compat"
)

// MarkdownRenderer renders a report as a markdown document suitable for PR
// comments or docs.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(w io.Writer, rep *compat.Report, issues []compat.Issue) error {
	_, err := io.WriteString(w, BuildMarkdownSummary(rep, issues))
	return err
}

// BuildMarkdownSummary creates the markdown body for a report.
func BuildMarkdownSummary(rep *compat.Report, issues []compat.Issue) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## Compatscope: Grade %s (score %.1f)\n\n", rep.Grade, rep.OverallScore))

	sb.WriteString("### Browser Scores\n\n")
	sb.WriteString("| Browser | Version | Score | Full | Partial | Unsupported |\n")
	sb.WriteString("|---------|---------|-------|------|---------|-------------|\n")
	browsers := make([]string, 0, len(rep.BrowserScores))
	for b := range rep.BrowserScores {
		browsers = append(browsers, b)
	}
	sort.Strings(browsers)
	for _, b := range browsers {
		bs := rep.BrowserScores[b]
		sb.WriteString(fmt.Sprintf("| %s | %s | %.1f | %d | %d | %d |\n",
			bs.Browser, bs.Version, bs.Score, bs.Supported, bs.Partial, bs.Unsupported))
	}
	sb.WriteString("\n")

	if len(issues) > 0 {
		sb.WriteString("### Issues\n\n")
		for _, issue := range issues {
			sb.WriteString(fmt.Sprintf("- %s **%s** (%s): affects %s\n",
				severityIcon(issue.Severity), issue.Name, issue.Severity,
				strings.Join(issue.BrowsersAffected, ", ")))
			if issue.Workaround != "" {
				sb.WriteString(fmt.Sprintf("  - %s\n", issue.Workaround))
			}
		}
	} else {
		sb.WriteString("No compatibility issues found.\n")
	}

	return sb.String()
}

func severityIcon(sev compat.Severity) string {
	switch sev {
	case compat.SeverityCritical, compat.SeverityHigh:
		return ":red_circle:"
	case compat.SeverityMedium:
		return ":orange_circle:"
	case compat.SeverityLow:
		return ":yellow_circle:"
	default:
		return ":blue_circle:"
	}
}
