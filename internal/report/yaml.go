package report

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harrison/docguard/internal/models"
)

// yamlReport is the on-disk shape of a YAML report.
type yamlReport struct {
	RunID       string               `yaml:"run_id"`
	GeneratedAt string               `yaml:"generated_at"`
	Document    string               `yaml:"document"`
	Results     []models.CheckResult `yaml:"results"`
	Passed      int                  `yaml:"passed"`
	Failed      int                  `yaml:"failed"`
}

// YAMLExporter renders the report as a YAML document.
type YAMLExporter struct{}

// Export implements Exporter.
func (ye *YAMLExporter) Export(r *Report) (string, error) {
	out := yamlReport{
		RunID:       r.RunID,
		GeneratedAt: r.GeneratedAt.Format(time.RFC3339),
		Document:    r.Document,
		Results:     r.Results,
		Passed:      r.Summary.Passed,
		Failed:      r.Summary.Failed,
	}
	if out.Results == nil {
		out.Results = []models.CheckResult{}
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return string(data), nil
}
