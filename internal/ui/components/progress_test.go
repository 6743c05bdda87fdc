package components

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestProgressBar_Width(t *testing.T) {
	for _, width := range []int{24, 40, 80, 133} {
		for _, done := range []int{0, 3, 7} {
			got := NewProgressBar(done, 7, width).View()
			assert.Equal(t, width, lipgloss.Width(got), "width=%d done=%d", width, done)
		}
	}
}

func TestProgressBar_Narrow(t *testing.T) {
	assert.Equal(t, "Progress: 2/7", NewProgressBar(2, 7, 10).View())
}

func TestProgressBar_Count(t *testing.T) {
	got := NewProgressBar(5, 14, 60).View()
	assert.Contains(t, got, "Progress: [")
	assert.Contains(t, got, "]   5/14")
}
