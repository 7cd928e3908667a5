package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/parliament/internal/proposal"
	"github.com/Iron-Ham/parliament/internal/roster"
)

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status   proposal.Status
		expected lipgloss.Color
	}{
		{proposal.StatusPending, MutedColor},
		{proposal.StatusDebating, WarningColor},
		{proposal.StatusPassed, SecondaryColor},
		{proposal.StatusRejected, ErrorColor},
		{proposal.Status("tabled"), MutedColor},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := StatusColor(tt.status); got != tt.expected {
				t.Errorf("StatusColor(%q) = %q, want %q", tt.status, got, tt.expected)
			}
		})
	}
}

func TestStatusIcon(t *testing.T) {
	tests := []struct {
		status   proposal.Status
		expected string
	}{
		{proposal.StatusPending, "○"},
		{proposal.StatusDebating, "●"},
		{proposal.StatusPassed, "✓"},
		{proposal.StatusRejected, "✗"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := StatusIcon(tt.status); got != tt.expected {
				t.Errorf("StatusIcon(%q) = %q, want %q", tt.status, got, tt.expected)
			}
		})
	}
}

func TestOrientationColor(t *testing.T) {
	seen := make(map[lipgloss.Color]roster.Orientation)
	for _, o := range roster.Orientations() {
		c := OrientationColor(o)
		if prev, dup := seen[c]; dup {
			t.Errorf("%s and %s share color %s", prev, o, c)
		}
		seen[c] = o
	}

	if got := OrientationColor(roster.Orientation("monarchist")); got != CenterColor {
		t.Errorf("unknown orientation color = %q, want center %q", got, CenterColor)
	}
}

func TestGroupColor(t *testing.T) {
	withColor := roster.Group{ID: "greens", Color: "#16A34A", Orientation: roster.LeftWing}
	if got := GroupColor(withColor); got != lipgloss.Color("#16A34A") {
		t.Errorf("GroupColor() = %q, want the group's own color", got)
	}

	without := roster.Group{ID: "greens", Orientation: roster.LeftWing}
	if got := GroupColor(without); got != LeftWingColor {
		t.Errorf("GroupColor() = %q, want %q", got, LeftWingColor)
	}
}

func TestBadge(t *testing.T) {
	got := Badge(proposal.StatusPassed)
	if !strings.Contains(got, "✓ passed") {
		t.Errorf("Badge() = %q, want it to contain %q", got, "✓ passed")
	}
}
