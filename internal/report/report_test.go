package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/owenrumney/go-sarif/v2/sarif"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/harrison/docguard/internal/models"
)

func sampleResults() []models.CheckResult {
	docker := models.SectionMissing("docker-commands", "Docker Commands")
	docker.Path = "/repo/backend/README.md"
	envSetup := models.Fail("environment-setup", "Missing env vars: PORT.", "PORT")
	envSetup.Path = "/repo/backend/README.md"
	envSetup.Line = 42
	return []models.CheckResult{
		{Name: "identification", Passed: true, Path: "/repo/backend/README.md"},
		envSetup,
		docker,
	}
}

func TestNew(t *testing.T) {
	r := New("/repo/backend/README.md", sampleResults())

	_, err := uuid.Parse(r.RunID)
	assert.NoError(t, err)
	assert.Equal(t, models.Summary{Total: 3, Passed: 1, Failed: 2}, r.Summary)
	assert.Len(t, r.Failures(), 2)
	assert.False(t, r.GeneratedAt.IsZero())

	assert.NotEqual(t, r.RunID, New("", nil).RunID)
}

func TestNewExporter(t *testing.T) {
	for _, format := range []string{"text", "", "yaml", "yml", "SARIF"} {
		_, err := NewExporter(format, false)
		assert.NoError(t, err, format)
	}
	_, err := NewExporter("json", false)
	assert.ErrorContains(t, err, "unsupported format: json")
}

func TestTextExporter(t *testing.T) {
	out, err := (&TextExporter{}).Export(New("/repo/backend/README.md", sampleResults()))
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"Document: /repo/backend/README.md",
		"",
		"✓ identification",
		"✗ environment-setup: Missing env vars: PORT.",
		"✗ docker-commands: Docker Commands section missing.",
		"",
		"3 checks, 1 passed, 2 failed",
		"",
	}, "\n"), out)
}

func TestTextExporter_Color(t *testing.T) {
	plain, err := (&TextExporter{}).Export(New("README.md", sampleResults()))
	require.NoError(t, err)
	colored, err := (&TextExporter{Color: true}).Export(New("README.md", sampleResults()))
	require.NoError(t, err)

	assert.NotContains(t, plain, "\x1b[")
	assert.Contains(t, colored, "\x1b[")
}

func TestTextExporter_DocumentMissing(t *testing.T) {
	out, err := (&TextExporter{}).Export(New("", []models.CheckResult{models.DocumentMissing("identification")}))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Document: not found\n"))
	assert.Contains(t, out, "✗ identification: could not locate environment README with expected markers")
}

func TestYAMLExporter(t *testing.T) {
	r := New("/repo/backend/README.md", sampleResults())
	out, err := (&YAMLExporter{}).Export(r)
	require.NoError(t, err)

	var decoded struct {
		RunID    string               `yaml:"run_id"`
		Document string               `yaml:"document"`
		Results  []models.CheckResult `yaml:"results"`
		Passed   int                  `yaml:"passed"`
		Failed   int                  `yaml:"failed"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, r.RunID, decoded.RunID)
	assert.Equal(t, "/repo/backend/README.md", decoded.Document)
	assert.Equal(t, 1, decoded.Passed)
	assert.Equal(t, 2, decoded.Failed)
	assert.Equal(t, r.Results, decoded.Results)
	assert.Contains(t, out, "kind: section_missing")
}

func TestYAMLExporter_EmptyResults(t *testing.T) {
	out, err := (&YAMLExporter{}).Export(New("", nil))
	require.NoError(t, err)
	assert.Contains(t, out, "results: []")
}

func TestSARIFExporter(t *testing.T) {
	out, err := (&SARIFExporter{}).Export(New("/repo/backend/README.md", sampleResults()))
	require.NoError(t, err)

	log, err := sarif.FromString(out)
	require.NoError(t, err)
	assert.Equal(t, "2.1.0", string(log.Version))
	require.Len(t, log.Runs, 1)
	run := log.Runs[0]

	assert.Equal(t, "docguard", run.Tool.Driver.Name)
	require.Len(t, run.Tool.Driver.Rules, 3)
	assert.Equal(t, "identification", run.Tool.Driver.Rules[0].ID)

	require.Len(t, run.Results, 2)
	assert.Equal(t, "environment-setup", *run.Results[0].RuleID)
	assert.Equal(t, "Missing env vars: PORT.", *run.Results[0].Message.Text)
	require.Len(t, run.Results[0].Locations, 1)
	physical := run.Results[0].Locations[0].PhysicalLocation
	assert.Equal(t, "/repo/backend/README.md", *physical.ArtifactLocation.URI)
	assert.Equal(t, 42, *physical.Region.StartLine)

	assert.Equal(t, "docker-commands", *run.Results[1].RuleID)
	assert.Nil(t, run.Results[1].Locations[0].PhysicalLocation.Region)
	assert.Equal(t, "section_missing", run.Results[1].Properties["kind"])
}

func TestSARIFExporter_AllPassed(t *testing.T) {
	r := New("README.md", []models.CheckResult{models.Pass("identification"), models.Pass("spelling")})

	out, err := (&SARIFExporter{}).Export(r)
	require.NoError(t, err)

	log, err := sarif.FromString(out)
	require.NoError(t, err)
	require.Len(t, log.Runs, 1)
	run := log.Runs[0]
	assert.Len(t, run.Tool.Driver.Rules, 2)
	assert.Empty(t, run.Results)
	require.Len(t, run.Invocations, 1)
	assert.Equal(t, r.RunID, run.Invocations[0].Properties["run_id"])
}

func TestSARIFExporter_DocumentMissingHasNoLocation(t *testing.T) {
	out, err := (&SARIFExporter{}).Export(New("", []models.CheckResult{models.DocumentMissing("identification")}))
	require.NoError(t, err)

	log, err := sarif.FromString(out)
	require.NoError(t, err)
	require.Len(t, log.Runs[0].Results, 1)
	assert.Empty(t, log.Runs[0].Results[0].Locations)
}

func TestExportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.yaml")
	r := New("README.md", sampleResults())

	require.NoError(t, ExportToFile(context.Background(), r, path, "yaml"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "run_id: "+r.RunID)

	assert.ErrorContains(t, ExportToFile(context.Background(), nil, path, "yaml"), "report cannot be nil")
	assert.ErrorContains(t, ExportToFile(context.Background(), r, "", "yaml"), "path cannot be empty")
	assert.ErrorContains(t, ExportToFile(context.Background(), r, path, "xml"), "unsupported format")
}

func TestWrite(t *testing.T) {
	r := New("README.md", sampleResults())

	var buf strings.Builder
	require.NoError(t, Write(context.Background(), r, "text", "", &buf, false))
	assert.Contains(t, buf.String(), "✓ identification")

	path := filepath.Join(t.TempDir(), "report.sarif")
	buf.Reset()
	require.NoError(t, Write(context.Background(), r, "sarif", path, &buf, true))
	assert.Empty(t, buf.String())
	assert.FileExists(t, path)
}
