package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/parliament/internal/proposal"
	"github.com/Iron-Ham/parliament/internal/tui/styles"
	"github.com/Iron-Ham/parliament/internal/util"
)

// Layout constants
const (
	DocketWidth    = 44 // docket pane including border
	HeaderHeight   = 2  // title + bottom border
	StatusHeight   = 1
	PaneChrome     = 4 // border + horizontal padding of a pane
	progressWidth  = 12
	minPaneContent = 10
)

// transcriptSize returns the inner size of the transcript viewport.
func (m Model) transcriptSize() (width, height int) {
	width = max(m.width-DocketWidth-PaneChrome, minPaneContent)
	height = max(m.bodyHeight()-2, 1)
	return width, height
}

func (m Model) bodyHeight() int {
	return max(m.height-HeaderHeight-StatusHeight-m.helpHeight(), 3)
}

func (m Model) helpHeight() int {
	if m.showHelp {
		return 4
	}
	return 1
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Opening the chamber..."
	}

	var body string
	switch m.mode {
	case modeForm:
		body = lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, m.form.view())
	case modeRoster:
		body = lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, m.renderRoster())
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderDocket(), m.renderTranscriptPane())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderStatus(),
		styles.HelpBar.Render(m.help.View(m.keys)),
	)
}

func (m Model) renderHeader() string {
	counts := m.chamber.Summary()
	parts := []string{styles.Title.Render("Parliament")}
	for _, s := range []proposal.Status{proposal.StatusDebating, proposal.StatusPending, proposal.StatusPassed, proposal.StatusRejected} {
		parts = append(parts, lipgloss.NewStyle().Foreground(styles.StatusColor(s)).
			Render(fmt.Sprintf("%s %d %s", styles.StatusIcon(s), counts[s], s)))
	}
	return styles.Header.Width(max(m.width, 1)).Render(strings.Join(parts, "   "))
}

func (m Model) renderDocket() string {
	inner := DocketWidth - PaneChrome
	threshold := m.chamber.Threshold()

	var b strings.Builder
	b.WriteString(styles.Title.Render("Docket"))
	b.WriteString("\n\n")
	for i, p := range m.proposals {
		title := fmt.Sprintf("%s %s %s", styles.StatusIcon(p.Status), p.ID, p.Title)
		tally := fmt.Sprintf("%d/%d/%d %s", p.Votes.For, p.Votes.Against, p.Votes.Abstain,
			util.Progress(p.Votes.Decisive(), threshold, progressWidth))

		style := styles.DocketItem.Foreground(styles.StatusColor(p.Status))
		if i == m.cursor {
			style = styles.DocketItemSelected
		}
		b.WriteString(style.Render(util.PadRight(util.Truncate(title, inner-2), inner-2)))
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render("   " + tally))
		b.WriteString("\n")
	}

	return styles.Docket.
		Width(inner + 2).
		Height(m.bodyHeight() - 2).
		Render(b.String())
}

func (m Model) renderTranscriptPane() string {
	w, _ := m.transcriptSize()
	return styles.Transcript.Width(w + 2).Render(m.transcript.View())
}

// renderTranscript renders the statements of the proposal under debate,
// oldest first, colored by the speaker's group.
func (m Model) renderTranscript() string {
	active, ok := m.chamber.ActiveProposal()
	if !ok {
		return styles.Muted.Render("No proposal is under debate. Select one and press enter.")
	}

	width, _ := m.transcriptSize()
	var b strings.Builder
	b.WriteString(styles.Title.Render(util.Truncate(active.ID+" · "+active.Title, width)))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(util.Wrap(active.Description, width)))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("tags: " + strings.Join(active.Tags, ", ")))
	b.WriteString("\n\n")

	statements, err := m.chamber.StatementsFor(active.ID)
	if err != nil {
		return styles.Error.Render(err.Error())
	}
	if len(statements) > m.transcriptLines {
		statements = statements[len(statements)-m.transcriptLines:]
	}
	if len(statements) == 0 {
		b.WriteString(styles.Muted.Render("The floor is silent. Press g to call the next speaker."))
		b.WriteString("\n")
	}

	for _, s := range statements {
		name, groupName := s.PoliticianID, ""
		color := styles.MutedColor
		if pol, group, err := m.chamber.Speaker(s); err == nil {
			name, groupName = pol.Name, group.Name
			color = styles.GroupColor(group)
		}
		speaker := styles.Speaker.Foreground(color).Render(fmt.Sprintf("%s (%s)", name, groupName))
		b.WriteString(styles.Timestamp.Render(s.Timestamp.Format("15:04:05")))
		b.WriteString(" ")
		b.WriteString(speaker)
		b.WriteString("\n")
		b.WriteString(util.Wrap(s.Content, width))
		b.WriteString("\n\n")
	}

	if m.thinking {
		b.WriteString(styles.Warning.Render("The next speaker is gathering their thoughts..."))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderRoster() string {
	groups := m.chamber.ListGroups()

	var b strings.Builder
	b.WriteString(styles.Title.Render("Roster"))
	b.WriteString("\n\n")
	for i, g := range groups {
		line := fmt.Sprintf("%s  %s  %s", util.PadRight(g.Name, 24), util.PadRight(g.Orientation.Label(), 11), util.Plural(g.SeatsCount, "seat"))
		style := lipgloss.NewStyle().Foreground(styles.GroupColor(g))
		if i == m.rosterCursor {
			style = styles.DocketItemSelected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	if m.rosterCursor < len(groups) {
		g := groups[m.rosterCursor]
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render(util.Wrap(g.Description, 60)))
		b.WriteString("\n\n")
		members, _ := m.chamber.ListPoliticians(g.ID)
		for _, p := range members {
			role := p.Specialty
			if p.Role != "" {
				role = p.Role + ", " + p.Specialty
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", util.PadRight(p.Name, 24), styles.Muted.Render(role)))
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("j/k select group • p or esc close"))
	return styles.Modal.Render(b.String())
}

func (m Model) renderStatus() string {
	width := max(m.width, 1)
	if m.status != "" {
		style := styles.StatusBar
		if m.statusErr {
			style = styles.StatusBarError
		}
		return style.Width(width).Render(util.Truncate(m.status, max(width-2, 1)))
	}

	hint := fmt.Sprintf("Threshold %s (for + against) • thinking delay %s",
		util.Plural(m.chamber.Threshold(), "vote"), m.thinkingDelay)
	return styles.StatusBar.Width(width).Render(util.Truncate(hint, max(width-2, 1)))
}
