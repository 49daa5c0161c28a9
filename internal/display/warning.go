package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Paths the warning refers to (optional)
	Suggestion string   // Action to take (optional)
}

// String renders the warning without color.
func (w Warning) String() string {
	var b strings.Builder

	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		if len(w.Files) == 1 {
			b.WriteString("    Looked at:\n")
		} else {
			b.WriteString(fmt.Sprintf("    Looked at %d paths:\n", len(w.Files)))
		}
		for i, file := range w.Files {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, file))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	return b.String()
}

// Display writes the warning to out, in yellow when colored is set.
func (w Warning) Display(out io.Writer, colored bool) {
	yellow := color.New(color.FgYellow)
	if colored {
		yellow.EnableColor()
	} else {
		yellow.DisableColor()
	}
	fmt.Fprint(out, yellow.Sprint(w.String()))
}
