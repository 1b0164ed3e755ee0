package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45% for pct in [0, 1].
// Color follows completion: red below a third, yellow below two thirds,
// green above, and blue once the bar is full.
func RenderProgress(pct float64, width int) string {
	pct = clampUnit(pct)
	return fmt.Sprintf("[%s] %s", styledBar(pct, width), FormatPercent(pct*100))
}

// RenderCompactBar renders the bar alone, without brackets or a percentage.
// When dim is set the bar uses the muted color regardless of completion.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct = clampUnit(pct)
	if dim {
		return StyleDim.Render(plainBar(pct, width))
	}
	return styledBar(pct, width)
}

// FormatPercent renders a percentage with one decimal below 10% and none
// above, so early progress is still visible.
func FormatPercent(pct float64) string {
	if pct > 0 && pct < 10 {
		return fmt.Sprintf("%4.1f%%", pct)
	}
	return fmt.Sprintf("%3.0f%%", pct)
}

func styledBar(pct float64, width int) string {
	style := StyleGreen
	switch {
	case pct >= 1:
		style = StyleBlue
	case pct < 0.33:
		style = StyleRed
	case pct < 0.66:
		style = StyleYellow
	}
	return style.Render(plainBar(pct, width))
}

func plainBar(pct float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := min(int(pct*float64(width)), width)
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func clampUnit(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
