// Package markdown extracts sections, headings, fenced code blocks and links
// from README text.
//
// Section boundaries are found line by line with regular expressions: a
// section runs from the end of its level-2 or level-3 heading line up to the
// next level-2 or level-3 heading of any title. Heading rank is not used to
// decide nesting, so a "###" sub-heading ends its parent "##" section.
//
// Code blocks and links are read from the goldmark AST.
package markdown

import (
	"regexp"
	"strings"

	"github.com/harrison/docguard/internal/models"
)

var (
	nextHeadingRegex = regexp.MustCompile(`(?m)^#{2,3}[ \t]+`)
	anyHeadingRegex  = regexp.MustCompile(`(?m)^(#{2,3})[ \t]+(.*?)[ \t\r]*$`)
)

// stepPrefix matches a numbered step such as "3. " before a heading title.
const stepPrefix = `(?:\d+\.[ \t]+)?`

// headingRegex matches a level-2 or level-3 heading line with the exact title.
func headingRegex(title, prefix string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^(#{2,3})[ \t]+` + prefix + regexp.QuoteMeta(strings.TrimSpace(title)) + `[ \t\r]*$`)
}

// ExtractSection returns the section under the first heading titled title.
// The second return value is false when no such heading exists.
func ExtractSection(text, title string) (models.Section, bool) {
	loc := headingRegex(title, "").FindStringSubmatchIndex(text)
	if loc == nil {
		return models.Section{}, false
	}

	start := loc[1]
	end := len(text)
	if next := nextHeadingRegex.FindStringIndex(text[start:]); next != nil {
		end = start + next[0]
	}

	return models.Section{
		Title: strings.TrimSpace(title),
		Level: loc[3] - loc[2],
		Line:  lineOf(text, loc[0]),
		Start: start,
		End:   end,
		Body:  text[start:end],
	}, true
}

// HasStepHeading reports whether a level-2 or level-3 heading with this title
// exists, optionally after a numbered step prefix, so
// "### 3. Start the Database" satisfies "Start the Database".
func HasStepHeading(text, title string) bool {
	return headingRegex(title, stepPrefix).MatchString(text)
}

// HasHeadingLevel reports whether a heading of exactly the given level (2 or
// 3) with this title exists.
func HasHeadingLevel(text, title string, level int) bool {
	pattern := `(?m)^` + strings.Repeat("#", level) + `[ \t]+` + regexp.QuoteMeta(strings.TrimSpace(title)) + `[ \t\r]*$`
	return regexp.MustCompile(pattern).MatchString(text)
}

// Heading is a level-2 or level-3 heading line.
type Heading struct {
	Level int
	Title string
	Line  int
}

// String renders the heading as markdown.
func (h Heading) String() string {
	return strings.Repeat("#", h.Level) + " " + h.Title
}

// Headings lists every level-2 and level-3 heading in document order.
func Headings(text string) []Heading {
	var headings []Heading
	for _, m := range anyHeadingRegex.FindAllStringSubmatchIndex(text, -1) {
		headings = append(headings, Heading{
			Level: m[3] - m[2],
			Title: text[m[4]:m[5]],
			Line:  lineOf(text, m[0]),
		})
	}
	return headings
}

// FirstLine returns the first line of text with surrounding whitespace removed.
func FirstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(line)
}

func lineOf(text string, offset int) int {
	return strings.Count(text[:offset], "\n") + 1
}
