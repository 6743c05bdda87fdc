package layout

import (
	"strings"

	"github.com/abhisek/gopherlings/internal/ui/theme"
)

const (
	// DefaultWidth is used until the terminal reports its size.
	DefaultWidth = 80

	// MinWidth is the narrowest width anything is laid out for.
	MinWidth = 20
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// ClampWidth maps an unknown or tiny terminal width to something drawable.
func ClampWidth(width int) int {
	if width <= 0 {
		return DefaultWidth
	}
	return max(width, MinWidth)
}

// RenderFooter renders key hints on one line.
func RenderFooter(hints []KeyHint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := theme.Key.Render(h.Key) + ":" + theme.Dim.Render(h.Description)
		parts = append(parts, part)
	}

	return strings.Join(parts, " / ")
}

// RenderFrame stacks non-empty sections separated by blank lines.
func RenderFrame(sections ...string) string {
	kept := make([]string, 0, len(sections))
	for _, s := range sections {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, "\n\n")
}
