// Package styles holds the lipgloss palette and styles of the chamber TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/parliament/internal/proposal"
	"github.com/Iron-Ham/parliament/internal/roster"
)

var (
	// Colors - all colors meet WCAG AA contrast (4.5:1) on both black and dark surfaces
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray

	// Orientation colors run from red on the left to blue on the right
	FarLeftColor   = lipgloss.Color("#F87171")
	LeftWingColor  = lipgloss.Color("#FB923C")
	CenterColor    = lipgloss.Color("#FBBF24")
	RightWingColor = lipgloss.Color("#60A5FA")
	FarRightColor  = lipgloss.Color("#818CF8")

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor)

	// Docket pane
	Docket = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)

	DocketItem = lipgloss.NewStyle().
			Padding(0, 1)

	DocketItemSelected = lipgloss.NewStyle().
				Bold(true).
				Foreground(TextColor).
				Background(PrimaryColor).
				Padding(0, 1)

	// Transcript pane
	Transcript = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	Speaker = lipgloss.NewStyle().Bold(true)

	Timestamp = lipgloss.NewStyle().Foreground(MutedColor)

	StatusBadge = lipgloss.NewStyle().
			Padding(0, 1)

	// Footer / status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(SurfaceColor).
			Padding(0, 1)

	StatusBarError = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(ErrorColor).
			Padding(0, 1)

	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor)

	// Overlays
	Modal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(1, 2)

	FormLabel = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(14)

	FormLabelFocused = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true).
				Width(14)

	FormError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			MarginTop(1)
)

// StatusColor returns the color for a proposal status
func StatusColor(status proposal.Status) lipgloss.Color {
	switch status {
	case proposal.StatusDebating:
		return WarningColor
	case proposal.StatusPassed:
		return SecondaryColor
	case proposal.StatusRejected:
		return ErrorColor
	default:
		return MutedColor
	}
}

// StatusIcon returns the icon for a proposal status
func StatusIcon(status proposal.Status) string {
	switch status {
	case proposal.StatusDebating:
		return "●"
	case proposal.StatusPassed:
		return "✓"
	case proposal.StatusRejected:
		return "✗"
	default:
		return "○"
	}
}

// OrientationColor returns the palette color for a political orientation.
// Unknown orientations get the center color.
func OrientationColor(o roster.Orientation) lipgloss.Color {
	switch o {
	case roster.FarLeft:
		return FarLeftColor
	case roster.LeftWing:
		return LeftWingColor
	case roster.RightWing:
		return RightWingColor
	case roster.FarRight:
		return FarRightColor
	default:
		return CenterColor
	}
}

// GroupColor prefers the group's own display color and falls back to its
// orientation color.
func GroupColor(g roster.Group) lipgloss.Color {
	if g.Color != "" {
		return lipgloss.Color(g.Color)
	}
	return OrientationColor(g.Orientation)
}

// Badge renders a colored status badge such as "● debating".
func Badge(status proposal.Status) string {
	return StatusBadge.Foreground(StatusColor(status)).Render(StatusIcon(status) + " " + string(status))
}
