package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/gopherlings/internal/ui/theme"
)

const (
	progressPrefix = "Progress: ["
	// prefix plus "] ddd/ddd" plus a four cell bar
	progressMinWidth = len(progressPrefix) + 9 + 4
)

// ProgressBar displays done/total as a fixed-width bar:
//
//	Progress: [#####>--------]   5/14
type ProgressBar struct {
	Done  int
	Total int
	Width int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(done, total, width int) ProgressBar {
	return ProgressBar{
		Done:  done,
		Total: total,
		Width: width,
	}
}

// View renders the progress bar. Terminals too narrow for a bar get the
// bare count.
func (p ProgressBar) View() string {
	if p.Width < progressMinWidth || p.Total <= 0 {
		return fmt.Sprintf("Progress: %d/%d", p.Done, p.Total)
	}

	postfix := fmt.Sprintf("] %3d/%d", p.Done, p.Total)
	width := p.Width - len(progressPrefix) - len(postfix)
	filled := min(max(width*p.Done/p.Total, 0), width)

	bar := strings.Repeat("#", filled)
	if filled < width {
		bar += ">"
	}
	var rest string
	if n := width - filled - 1; n > 0 {
		rest = strings.Repeat("-", n)
	}

	return progressPrefix +
		theme.ProgressFilled.Render(bar) +
		theme.ProgressEmpty.Render(rest) +
		postfix
}
