package tui

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/parliament/internal/event"
	"github.com/Iron-Ham/parliament/internal/logging"
	"github.com/Iron-Ham/parliament/internal/parliament"
	"github.com/Iron-Ham/parliament/internal/proposal"
)

// statusTTL is how long a transient status message stays on screen.
const statusTTL = 4 * time.Second

type mode int

const (
	modeBrowse mode = iota
	modeForm
	modeRoster
)

// Options configures the chamber UI.
type Options struct {
	ThinkingDelay   time.Duration
	TranscriptLines int
	ShowHelp        bool
	Logger          *logging.Logger
}

// Messages

// thinkingDoneMsg fires when the thinking delay for a statement has elapsed.
type thinkingDoneMsg struct {
	proposalID string
}

// thinkingDelayMsg changes the thinking delay while running.
type thinkingDelayMsg time.Duration

type clearStatusMsg struct {
	seq int
}

// inbox buffers chamber events published while Update runs. The bus
// dispatches synchronously, so handlers must not block on the program.
type inbox struct {
	mu     sync.Mutex
	events []event.Event
}

func (b *inbox) push(e event.Event) {
	b.mu.Lock()
	b.events = append(b.events, e)
	b.mu.Unlock()
}

func (b *inbox) drain() []event.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.events
	b.events = nil
	return out
}

// Model is the Bubbletea model of the chamber.
type Model struct {
	chamber *parliament.Parliament
	logger  *logging.Logger
	inbox   *inbox
	subID   string

	keys     keyMap
	help     help.Model
	showHelp bool

	mode      mode
	proposals []proposal.Proposal
	cursor    int

	transcript      viewport.Model
	transcriptLines int
	thinkingDelay   time.Duration
	thinking        bool

	form         proposalForm
	rosterCursor int

	status    string
	statusErr bool
	statusSeq int

	width  int
	height int
	ready  bool
}

// NewModel creates the model and subscribes it to the chamber's events.
func NewModel(chamber *parliament.Parliament, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}
	if opts.TranscriptLines <= 0 {
		opts.TranscriptLines = 200
	}

	in := &inbox{}
	m := Model{
		chamber:         chamber,
		logger:          opts.Logger.WithComponent("tui"),
		inbox:           in,
		subID:           chamber.Bus().SubscribeAll(in.push),
		keys:            defaultKeyMap(),
		help:            help.New(),
		showHelp:        opts.ShowHelp,
		transcript:      viewport.New(0, 0),
		transcriptLines: opts.TranscriptLines,
		thinkingDelay:   opts.ThinkingDelay,
		form:            newProposalForm(),
	}
	m.help.ShowAll = m.showHelp
	m.refresh()
	if active, ok := chamber.ActiveProposal(); ok {
		m.cursor = m.indexOf(active.ID)
	}
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case thinkingDoneMsg:
		return m.finishStatement(msg.proposalID)

	case thinkingDelayMsg:
		m.thinkingDelay = time.Duration(msg)
		m.logger.Info("thinking delay updated", "delay", m.thinkingDelay.String())
		return m, m.setStatus(fmt.Sprintf("Thinking delay set to %s", m.thinkingDelay), false)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	}

	if m.mode == modeForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeForm:
		return m.handleFormKey(msg)
	case modeRoster:
		return m.handleRosterKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.proposals)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		return m.selectForDebate()

	case key.Matches(msg, m.keys.Generate):
		return m.startStatement()

	case key.Matches(msg, m.keys.VoteFor):
		return m.vote(proposal.ChoiceFor)

	case key.Matches(msg, m.keys.Against):
		return m.vote(proposal.ChoiceAgainst)

	case key.Matches(msg, m.keys.Abstain):
		return m.vote(proposal.ChoiceAbstain)

	case key.Matches(msg, m.keys.New):
		m.mode = modeForm
		m.form = newProposalForm()
		return m, nil

	case key.Matches(msg, m.keys.Roster):
		m.mode = modeRoster
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.resize()
		return m, nil
	}

	// Remaining keys scroll the transcript
	var cmd tea.Cmd
	m.transcript, cmd = m.transcript.Update(msg)
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "down":
		return m, m.form.next()
	case "shift+tab", "up":
		return m, m.form.prev()
	case "ctrl+s":
		return m.submitProposal()
	case "enter":
		if m.form.onLastField() {
			return m.submitProposal()
		}
		return m, m.form.next()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) handleRosterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	groups := m.chamber.ListGroups()
	switch {
	case msg.String() == "esc", key.Matches(msg, m.keys.Roster):
		m.mode = modeBrowse
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.rosterCursor > 0 {
			m.rosterCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.rosterCursor < len(groups)-1 {
			m.rosterCursor++
		}
	}
	return m, nil
}

// Chamber operations

func (m Model) selectedProposal() (proposal.Proposal, bool) {
	if m.cursor < 0 || m.cursor >= len(m.proposals) {
		return proposal.Proposal{}, false
	}
	return m.proposals[m.cursor], true
}

func (m Model) selectForDebate() (tea.Model, tea.Cmd) {
	selected, ok := m.selectedProposal()
	if !ok {
		return m, nil
	}
	if _, err := m.chamber.SelectForDebate(selected.ID); err != nil {
		return m, m.setError(err)
	}
	return m, m.absorbEvents()
}

func (m Model) vote(choice proposal.Choice) (tea.Model, tea.Cmd) {
	active, ok := m.chamber.ActiveProposal()
	if !ok {
		return m, m.setStatus("No proposal is under debate", true)
	}
	if _, err := m.chamber.Vote(active.ID, choice); err != nil {
		return m, m.setError(err)
	}
	return m, m.absorbEvents()
}

// startStatement schedules the next statement after the thinking delay.
func (m Model) startStatement() (tea.Model, tea.Cmd) {
	if m.thinking {
		return m, nil
	}
	active, ok := m.chamber.ActiveProposal()
	if !ok {
		return m, m.setStatus("No proposal is under debate", true)
	}

	m.thinking = true
	m.transcript.SetContent(m.renderTranscript())
	m.transcript.GotoBottom()
	id := active.ID
	if m.thinkingDelay <= 0 {
		return m, func() tea.Msg { return thinkingDoneMsg{proposalID: id} }
	}
	return m, tea.Tick(m.thinkingDelay, func(time.Time) tea.Msg {
		return thinkingDoneMsg{proposalID: id}
	})
}

func (m Model) finishStatement(proposalID string) (tea.Model, tea.Cmd) {
	m.thinking = false
	if _, err := m.chamber.GenerateStatement(proposalID); err != nil {
		m.refresh()
		return m, m.setError(err)
	}
	return m, m.absorbEvents()
}

func (m Model) submitProposal() (tea.Model, tea.Cmd) {
	created, err := m.chamber.SubmitProposal(m.form.request())
	if err != nil {
		return m, m.form.setError(err)
	}
	m.mode = modeBrowse
	m.form = newProposalForm()
	cmd := m.absorbEvents()
	m.cursor = m.indexOf(created.ID)
	return m, cmd
}

// absorbEvents refreshes the view after chamber events and shows the most
// recent one as the status.
func (m *Model) absorbEvents() tea.Cmd {
	events := m.inbox.drain()
	m.refresh()
	if len(events) == 0 {
		return nil
	}
	return m.setStatus(m.describe(events[len(events)-1]), false)
}

func (m *Model) setError(err error) tea.Cmd {
	m.logger.Warn("operation rejected", "error", err)
	return m.setStatus(err.Error(), true)
}

// setStatus shows a transient message and schedules its removal.
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// refresh reloads the docket and transcript from the chamber.
func (m *Model) refresh() {
	m.proposals = m.chamber.ListProposals()
	if m.cursor >= len(m.proposals) {
		m.cursor = max(len(m.proposals)-1, 0)
	}
	m.transcript.SetContent(m.renderTranscript())
	m.transcript.GotoBottom()
}

func (m Model) indexOf(id string) int {
	for i, p := range m.proposals {
		if p.ID == id {
			return i
		}
	}
	return m.cursor
}

func (m *Model) resize() {
	w, h := m.transcriptSize()
	m.transcript.Width = w
	m.transcript.Height = h
	m.help.Width = m.width
	m.transcript.SetContent(m.renderTranscript())
	m.transcript.GotoBottom()
}

// describe turns a chamber event into a status line.
func (m Model) describe(e event.Event) string {
	switch ev := e.(type) {
	case event.DebateOpenedEvent:
		if ev.DemotedID != "" {
			return fmt.Sprintf("Debate opened on %s; %s returns to pending", ev.ProposalID, ev.DemotedID)
		}
		return fmt.Sprintf("Debate opened on %s", ev.ProposalID)
	case event.VoteCastEvent:
		return fmt.Sprintf("Vote %s recorded on %s", ev.Choice, ev.ProposalID)
	case event.ProposalResolvedEvent:
		return fmt.Sprintf("%s %s: %d for, %d against, %d abstain", ev.ProposalID, ev.Outcome, ev.For, ev.Against, ev.Abstain)
	case event.ProposalSubmittedEvent:
		return fmt.Sprintf("%s submitted by %s", ev.ProposalID, ev.ProposedBy)
	case event.StatementAddedEvent:
		speaker := ev.PoliticianID
		if p, err := m.chamber.Politician(ev.PoliticianID); err == nil {
			speaker = p.Name
		}
		return fmt.Sprintf("%s takes the floor on %s", speaker, ev.ProposalID)
	default:
		return e.EventType()
	}
}
