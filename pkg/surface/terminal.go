package surface

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/compatscope/compatscope/pkg/compat"
)

// TerminalRenderer renders a report as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func gradeColor(grade string) string {
	if noColor() {
		return ""
	}
	switch strings.TrimRight(grade, "+-") {
	case "A", "B":
		return colorGreen
	case "C":
		return colorYellow
	default:
		return colorRed
	}
}

func severityColor(sev compat.Severity) string {
	if noColor() {
		return ""
	}
	switch sev {
	case compat.SeverityCritical, compat.SeverityHigh:
		return colorRed
	case compat.SeverityMedium:
		return colorYellow
	default:
		return ""
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, rep *compat.Report, issues []compat.Issue) error {
	fmt.Fprintf(w, "%s\n\n",
		bold(fmt.Sprintf("Compatscope: Grade %s (score %.1f)",
			colored(rep.Grade, gradeColor(rep.Grade)), rep.OverallScore)))

	fmt.Fprintf(w, "Analyzed %d features against %d browsers\n\n",
		len(rep.Features), len(rep.Targets))

	browsers := make([]string, 0, len(rep.BrowserScores))
	for b := range rep.BrowserScores {
		browsers = append(browsers, b)
	}
	sort.Strings(browsers)
	for _, b := range browsers {
		bs := rep.BrowserScores[b]
		fmt.Fprintf(w, "  %-12s %6.1f  %s\n",
			fmt.Sprintf("%s %s", bs.Browser, bs.Version), bs.Score,
			dim(fmt.Sprintf("%d full / %d partial / %d unsupported",
				bs.Supported, bs.Partial, bs.Unsupported)))
	}

	if len(issues) == 0 {
		fmt.Fprintf(w, "\n%s\n", colored("No compatibility issues.", colorGreen))
		return nil
	}

	fmt.Fprintf(w, "\n%s\n", bold(fmt.Sprintf("Issues (%d)", len(issues))))
	for _, issue := range issues {
		fmt.Fprintf(w, "  [%s] %s %s\n",
			colored(string(issue.Severity), severityColor(issue.Severity)),
			issue.Name,
			dim("("+strings.Join(issue.BrowsersAffected, ", ")+")"))
		if issue.Workaround != "" {
			fmt.Fprintf(w, "        %s\n", dim(issue.Workaround))
		}
	}
	return nil
}
