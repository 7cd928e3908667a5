package event

import "time"

// Event type identifiers, following the "category.action" convention.
const (
	TypeProposalSubmitted = "proposal.submitted"
	TypeProposalResolved  = "proposal.resolved"
	TypeDebateOpened      = "debate.opened"
	TypeVoteCast          = "vote.cast"
	TypeStatementAdded    = "statement.added"
)

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a string identifier for this event type.
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string, at time.Time) baseEvent {
	if at.IsZero() {
		at = time.Now()
	}
	return baseEvent{eventType: eventType, timestamp: at}
}

// -----------------------------------------------------------------------------
// Proposal Events
// -----------------------------------------------------------------------------

// ProposalSubmittedEvent is emitted when a proposal is added to the docket.
type ProposalSubmittedEvent struct {
	baseEvent
	ProposalID string
	Title      string
	ProposedBy string // group id
	Tags       []string
}

// NewProposalSubmittedEvent creates a ProposalSubmittedEvent.
func NewProposalSubmittedEvent(at time.Time, proposalID, title, proposedBy string, tags []string) ProposalSubmittedEvent {
	return ProposalSubmittedEvent{
		baseEvent:  newBaseEvent(TypeProposalSubmitted, at),
		ProposalID: proposalID,
		Title:      title,
		ProposedBy: proposedBy,
		Tags:       tags,
	}
}

// DebateOpenedEvent is emitted when a proposal is selected for debate.
// DemotedID names the proposal that returned to pending, if any.
type DebateOpenedEvent struct {
	baseEvent
	ProposalID string
	Title      string
	DemotedID  string
}

// NewDebateOpenedEvent creates a DebateOpenedEvent.
func NewDebateOpenedEvent(at time.Time, proposalID, title, demotedID string) DebateOpenedEvent {
	return DebateOpenedEvent{
		baseEvent:  newBaseEvent(TypeDebateOpened, at),
		ProposalID: proposalID,
		Title:      title,
		DemotedID:  demotedID,
	}
}

// ProposalResolvedEvent is emitted when a vote moves a proposal to a terminal status.
type ProposalResolvedEvent struct {
	baseEvent
	ProposalID string
	Title      string
	Outcome    string // "passed" or "rejected"
	For        int
	Against    int
	Abstain    int
}

// NewProposalResolvedEvent creates a ProposalResolvedEvent.
func NewProposalResolvedEvent(at time.Time, proposalID, title, outcome string, votesFor, against, abstain int) ProposalResolvedEvent {
	return ProposalResolvedEvent{
		baseEvent:  newBaseEvent(TypeProposalResolved, at),
		ProposalID: proposalID,
		Title:      title,
		Outcome:    outcome,
		For:        votesFor,
		Against:    against,
		Abstain:    abstain,
	}
}

// -----------------------------------------------------------------------------
// Chamber Floor Events
// -----------------------------------------------------------------------------

// VoteCastEvent is emitted after a vote has been counted.
type VoteCastEvent struct {
	baseEvent
	ProposalID string
	Choice     string // "for", "against" or "abstain"
	Status     string // proposal status after the vote
}

// NewVoteCastEvent creates a VoteCastEvent.
func NewVoteCastEvent(at time.Time, proposalID, choice, status string) VoteCastEvent {
	return VoteCastEvent{
		baseEvent:  newBaseEvent(TypeVoteCast, at),
		ProposalID: proposalID,
		Choice:     choice,
		Status:     status,
	}
}

// StatementAddedEvent is emitted when a debate statement is appended to the ledger.
type StatementAddedEvent struct {
	baseEvent
	StatementID  string
	ProposalID   string
	PoliticianID string
	GroupID      string
	Orientation  string
	Content      string
}

// NewStatementAddedEvent creates a StatementAddedEvent.
func NewStatementAddedEvent(at time.Time, statementID, proposalID, politicianID, groupID, orientation, content string) StatementAddedEvent {
	return StatementAddedEvent{
		baseEvent:    newBaseEvent(TypeStatementAdded, at),
		StatementID:  statementID,
		ProposalID:   proposalID,
		PoliticianID: politicianID,
		GroupID:      groupID,
		Orientation:  orientation,
		Content:      content,
	}
}
