// Package report renders check results as text, YAML or SARIF and writes them
// to stdout or a locked output file.
package report

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harrison/docguard/internal/config"
	"github.com/harrison/docguard/internal/filelock"
	"github.com/harrison/docguard/internal/models"
)

// Report is the outcome of one docguard run.
type Report struct {
	RunID       string
	Document    string
	GeneratedAt time.Time
	Results     []models.CheckResult
	Summary     models.Summary
}

// New builds a report for results. document is empty when no README was
// located.
func New(document string, results []models.CheckResult) *Report {
	return &Report{
		RunID:       uuid.NewString(),
		Document:    document,
		GeneratedAt: time.Now().UTC(),
		Results:     results,
		Summary:     models.Summarize(results),
	}
}

// Failures returns the failed results in report order.
func (r *Report) Failures() []models.CheckResult {
	var failed []models.CheckResult
	for _, res := range r.Results {
		if !res.Passed {
			failed = append(failed, res)
		}
	}
	return failed
}

// Exporter renders a report.
type Exporter interface {
	Export(r *Report) (string, error)
}

// NewExporter returns the exporter for format. color only affects text output.
func NewExporter(format string, color bool) (Exporter, error) {
	switch strings.ToLower(format) {
	case config.FormatText, "":
		return &TextExporter{Color: color}, nil
	case config.FormatYAML, "yml":
		return &YAMLExporter{}, nil
	case config.FormatSARIF:
		return &SARIFExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: text, yaml, sarif)", format)
	}
}

// ExportToString renders r in format without color.
func ExportToString(r *Report, format string) (string, error) {
	if r == nil {
		return "", fmt.Errorf("report cannot be nil")
	}
	exporter, err := NewExporter(format, false)
	if err != nil {
		return "", err
	}
	return exporter.Export(r)
}

// ExportToFile renders r in format and replaces path with it while holding
// path's lock file.
func ExportToFile(ctx context.Context, r *Report, path, format string) error {
	if r == nil {
		return fmt.Errorf("report cannot be nil")
	}
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	content, err := ExportToString(r, format)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if err := filelock.LockAndWrite(ctx, filepath.Clean(path), []byte(content)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Write sends r to output when set, otherwise to w. color applies to text
// written to w only.
func Write(ctx context.Context, r *Report, format, output string, w io.Writer, color bool) error {
	if output != "" {
		return ExportToFile(ctx, r, output, format)
	}
	exporter, err := NewExporter(format, color)
	if err != nil {
		return err
	}
	content, err := exporter.Export(r)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	_, err = io.WriteString(w, content)
	return err
}
