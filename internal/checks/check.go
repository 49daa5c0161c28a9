// Package checks holds the documentation assertion battery.
//
// Every check is a pure function of a located Document. Checks share no
// mutable state, report independently and can run in any order or in
// parallel. A check anchored to a section reports a section_missing failure
// when the heading is absent and a content failure when the heading exists
// but an expected element does not.
package checks

import (
	"strings"

	"github.com/harrison/docguard/internal/markdown"
	"github.com/harrison/docguard/internal/models"
)

// Check is one named documentation assertion.
type Check struct {
	Name        string
	Description string
	Run         func(doc *models.Document) models.CheckResult
}

// expectation accumulates the failed expectations of a single check.
type expectation struct {
	failures []string
	missing  []string
}

// require records message when ok is false. missing names the absent
// elements for structured output; it defaults to nothing.
func (e *expectation) require(ok bool, message string, missing ...string) {
	if ok {
		return
	}
	e.failures = append(e.failures, message)
	e.missing = append(e.missing, missing...)
}

func (e *expectation) result(name string) models.CheckResult {
	if len(e.failures) == 0 {
		return models.Pass(name)
	}
	return models.Fail(name, strings.Join(e.failures, " "), e.missing...)
}

// documentCheck builds a check over the full document text.
func documentCheck(name, description string, fn func(doc *models.Document, e *expectation)) Check {
	return Check{
		Name:        name,
		Description: description,
		Run: func(doc *models.Document) models.CheckResult {
			e := &expectation{}
			fn(doc, e)
			return e.result(name)
		},
	}
}

// sectionCheck builds a check over the body of the section titled title.
func sectionCheck(name, title, description string, fn func(body string, e *expectation)) Check {
	return Check{
		Name:        name,
		Description: description,
		Run: func(doc *models.Document) models.CheckResult {
			sec, ok := markdown.ExtractSection(doc.Text, title)
			if !ok {
				return models.SectionMissing(name, title)
			}
			e := &expectation{}
			fn(sec.Body, e)
			res := e.result(name)
			res.Line = sec.Line
			return res
		},
	}
}

// missingFrom returns the literals of want not contained in text, in order.
func missingFrom(text string, want ...string) []string {
	var missing []string
	for _, w := range want {
		if !strings.Contains(text, w) {
			missing = append(missing, w)
		}
	}
	return missing
}

func containsFold(text, substr string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(substr))
}

func quoteAll(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "'" + item + "'"
	}
	return strings.Join(quoted, ", ")
}

// Filter drops the checks named in skip. Names in skip that match no check
// are returned as unknown.
func Filter(all []Check, skip []string) (kept []Check, unknown []string) {
	skipSet := make(map[string]bool, len(skip))
	for _, s := range skip {
		skipSet[s] = true
	}
	seen := make(map[string]bool, len(all))
	for _, c := range all {
		seen[c.Name] = true
		if !skipSet[c.Name] {
			kept = append(kept, c)
		}
	}
	for _, s := range skip {
		if !seen[s] {
			unknown = append(unknown, s)
		}
	}
	return kept, unknown
}
