// Package display formats user-facing warnings on the terminal.
//
//	display.Warning{
//	    Title:      "README not found",
//	    Files:      []string{"README.md", "backend/README.md"},
//	    Suggestion: "Pass --root or add the path to locator.candidates",
//	}.Display(os.Stderr, true)
package display
