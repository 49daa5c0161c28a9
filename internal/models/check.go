package models

import "strings"

// FailureKind classifies why a check failed.
type FailureKind string

// Failure kinds
const (
	FailureNone            FailureKind = ""
	FailureDocumentMissing FailureKind = "document_missing"
	FailureSectionMissing  FailureKind = "section_missing"
	FailureContent         FailureKind = "content"
)

// CheckResult is the outcome of one documentation check
type CheckResult struct {
	Name    string      `yaml:"name"`
	Passed  bool        `yaml:"passed"`
	Kind    FailureKind `yaml:"kind,omitempty"`
	Message string      `yaml:"message,omitempty"`
	Missing []string    `yaml:"missing,omitempty"`
	Path    string      `yaml:"path,omitempty"`
	Line    int         `yaml:"line,omitempty"` // heading line the check is anchored to, 0 if none
}

// Pass returns a passing result.
func Pass(name string) CheckResult {
	return CheckResult{Name: name, Passed: true}
}

// Fail returns a failing content result.
func Fail(name, message string, missing ...string) CheckResult {
	return CheckResult{
		Name:    name,
		Kind:    FailureContent,
		Message: message,
		Missing: missing,
	}
}

// SectionMissing returns a failing result for a check whose section is absent.
func SectionMissing(name, title string) CheckResult {
	return CheckResult{
		Name:    name,
		Kind:    FailureSectionMissing,
		Message: title + " section missing.",
		Missing: []string{title},
	}
}

// DocumentMissing returns a failing result for a check that could not run
// because no document was located.
func DocumentMissing(name string) CheckResult {
	return CheckResult{
		Name:    name,
		Kind:    FailureDocumentMissing,
		Message: "could not locate environment README with expected markers",
	}
}

// String formats the result as a single report line.
func (r CheckResult) String() string {
	if r.Passed {
		return "✓ " + r.Name
	}
	var sb strings.Builder
	sb.WriteString("✗ ")
	sb.WriteString(r.Name)
	if r.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(r.Message)
	}
	return sb.String()
}

// Summary counts passed and failed results.
type Summary struct {
	Total  int `yaml:"total"`
	Passed int `yaml:"passed"`
	Failed int `yaml:"failed"`
}

// Summarize counts the results.
func Summarize(results []CheckResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// OK reports whether every result passed.
func (s Summary) OK() bool {
	return s.Failed == 0
}
