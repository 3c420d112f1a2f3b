package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/fieldpick/fieldpick/pkg/overlay"
)

// composeOverlay splices the overlay panel into the base view at the given
// point. Base content under and right of the panel is covered, which is the
// terminal equivalent of stacking the overlay above the document.
func composeOverlay(base, panel string, p overlay.Point) string {
	if panel == "" {
		return base
	}

	baseLines := strings.Split(base, "\n")
	panelLines := strings.Split(panel, "\n")

	x := p.X
	if x < 0 {
		x = 0
	}
	for i, pl := range panelLines {
		y := p.Y + i
		if y < 0 {
			continue
		}
		for len(baseLines) <= y {
			baseLines = append(baseLines, "")
		}

		left := truncate.String(baseLines[y], uint(x))
		if pad := x - lipgloss.Width(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		baseLines[y] = left + pl
	}
	return strings.Join(baseLines, "\n")
}
