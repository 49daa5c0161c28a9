package report

import (
	"bytes"
	"fmt"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/harrison/docguard/internal/models"
)

const (
	toolName = "docguard"
	toolURI  = "https://github.com/harrison/docguard"
)

// SARIFExporter renders a SARIF 2.1.0 log with one rule per check and one
// result per failed check.
type SARIFExporter struct{}

// Export implements Exporter.
func (se *SARIFExporter) Export(r *Report) (string, error) {
	log, err := sarif.New(sarif.Version210)
	if err != nil {
		return "", fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, toolURI)
	inv := run.AddInvocation(true).WithStartTimeUTC(r.GeneratedAt)
	inv.PropertyBag = *sarif.NewPropertyBag()
	inv.Add("run_id", r.RunID)

	for _, res := range r.Results {
		rule := run.AddRule(res.Name).
			WithDescription(ruleDescription(res)).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{Level: "error"})
		if res.Passed {
			continue
		}

		result := sarif.NewRuleResult(rule.ID).
			WithMessage(sarif.NewTextMessage(res.Message)).
			WithLevel(sarifLevel(res.Kind))
		if loc := location(r.Document, res); loc != nil {
			result.WithLocations([]*sarif.Location{loc})
		}
		result.PropertyBag = *sarif.NewPropertyBag()
		result.Add("kind", string(res.Kind))
		run.AddResult(result)
	}
	log.AddRun(run)

	var buf bytes.Buffer
	if err := log.PrettyWrite(&buf); err != nil {
		return "", fmt.Errorf("failed to write SARIF: %w", err)
	}
	return buf.String(), nil
}

func ruleDescription(res models.CheckResult) string {
	return "docguard check " + res.Name
}

func sarifLevel(kind models.FailureKind) string {
	switch kind {
	case models.FailureDocumentMissing, models.FailureSectionMissing, models.FailureContent:
		return "error"
	default:
		return "warning"
	}
}

func location(document string, res models.CheckResult) *sarif.Location {
	path := res.Path
	if path == "" {
		path = document
	}
	if path == "" {
		return nil
	}
	physical := sarif.NewPhysicalLocation().
		WithArtifactLocation(sarif.NewArtifactLocation().WithUri(path))
	if res.Line > 0 {
		physical.WithRegion(sarif.NewRegion().WithStartLine(res.Line))
	}
	return sarif.NewLocation().WithPhysicalLocation(physical)
}
