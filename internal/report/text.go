package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// TextExporter renders one line per check followed by a summary.
type TextExporter struct {
	Color bool
}

// Export implements Exporter.
func (te *TextExporter) Export(r *Report) (string, error) {
	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed, color.Bold)
	dim := color.New(color.Faint)
	for _, c := range []*color.Color{pass, fail, dim} {
		if te.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	var sb strings.Builder
	if r.Document != "" {
		sb.WriteString(dim.Sprintf("Document: %s", r.Document))
	} else {
		sb.WriteString(fail.Sprint("Document: not found"))
	}
	sb.WriteString("\n\n")

	for _, res := range r.Results {
		if res.Passed {
			sb.WriteString(pass.Sprint(res.String()))
		} else {
			sb.WriteString(fail.Sprint(res.String()))
		}
		sb.WriteString("\n")
	}

	s := r.Summary
	line := fmt.Sprintf("\n%d checks, %d passed, %d failed", s.Total, s.Passed, s.Failed)
	if s.OK() {
		sb.WriteString(pass.Sprint(line))
	} else {
		sb.WriteString(fail.Sprint(line))
	}
	sb.WriteString("\n")

	return sb.String(), nil
}
