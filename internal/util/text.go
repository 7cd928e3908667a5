// Package util holds small text helpers shared by the CLI tables and the TUI.
package util

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "…"

// Truncate shortens s to at most width terminal columns, ending in an
// ellipsis when anything was cut. Escape sequences are preserved and wide
// runes are measured by their display width.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, ellipsis)
}

// Wrap breaks s into lines no wider than width, preferring word boundaries.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Wrap(s, width, "")
}

// PadRight pads s with spaces to exactly width columns, truncating when it
// is already wider.
func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	switch {
	case w > width:
		return Truncate(s, width)
	case w == width:
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Plural formats a count with its noun, adding "s" unless n is one.
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// Progress renders a fixed-width bar showing how far value is toward total.
func Progress(value, total, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if total > 0 {
		filled = min(max(value, 0)*width/total, width)
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
