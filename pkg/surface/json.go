package surface

import (
	"encoding/json"
	"io"

	"github.com/compatscope/compatscope/pkg/compat"
)

// JSONRenderer marshals the report and issues to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, rep *compat.Report, issues []compat.Issue) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		*compat.Report
		Issues []compat.Issue `json:"issues"`
	}{rep, issues})
}
