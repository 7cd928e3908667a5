// Package parliament is the chamber facade: the single entry point through
// which the CLI and TUI list reference data, move proposals through debate
// and voting, and generate debate statements.
//
// Every operation runs under one mutex, so concurrent callers observe each
// operation as atomic. Events are published after the mutex is released;
// handlers may call back into the chamber.
package parliament

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Iron-Ham/parliament/internal/debate"
	"github.com/Iron-Ham/parliament/internal/errors"
	"github.com/Iron-Ham/parliament/internal/event"
	"github.com/Iron-Ham/parliament/internal/logging"
	"github.com/Iron-Ham/parliament/internal/proposal"
	"github.com/Iron-Ham/parliament/internal/roster"
	"github.com/Iron-Ham/parliament/internal/seed"
)

// Options configures a chamber. Zero values select defaults.
type Options struct {
	// VoteThreshold is the for+against count that resolves a proposal.
	VoteThreshold int
	// RecentSpeakerWindow is how many recent statements exclude their speakers.
	// Zero or negative selects debate.DefaultRecentWindow.
	RecentSpeakerWindow int
	// Rand drives speaker and response selection. Nil seeds from the clock.
	Rand debate.Rand
	// Clock supplies statement and submission times.
	Clock func() time.Time
	// NewStatementID overrides statement id generation.
	NewStatementID func() string
	// Bus receives chamber events. Nil creates a private bus.
	Bus *event.Bus
	// Logger receives operation logs. Nil discards them.
	Logger *logging.Logger
}

// DefaultOptions returns options with the default threshold and window.
func DefaultOptions() Options {
	return Options{
		VoteThreshold:       proposal.DefaultThreshold,
		RecentSpeakerWindow: debate.DefaultRecentWindow,
	}
}

// NewRand returns a seeded random source. Seed 0 seeds from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Parliament is one simulated chamber.
type Parliament struct {
	mu     sync.Mutex
	roster *roster.Roster
	docket *proposal.Docket
	ledger *debate.Ledger
	gen    *debate.Generator
	window int
	now    func() time.Time
	bus    *event.Bus
	logger *logging.Logger
}

// New builds a chamber from seed data. Proposals must name known groups and
// statements must name known politicians and proposals.
func New(data *seed.Data, opts Options) (*Parliament, error) {
	if data == nil {
		return nil, errors.NewValidationError("seed data is required").WithCause(errors.ErrSeedInvalid)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = NewRand(0)
	}
	if opts.Bus == nil {
		opts.Bus = event.NewBus(opts.Logger)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}
	if opts.RecentSpeakerWindow <= 0 {
		opts.RecentSpeakerWindow = debate.DefaultRecentWindow
	}

	r, err := roster.New(data.Groups, data.Politicians)
	if err != nil {
		return nil, errors.Wrap(err, "build roster")
	}
	for _, p := range data.Proposals {
		if _, err := r.Group(p.ProposedBy); err != nil {
			return nil, errors.Wrapf(err, "proposal %s", p.ID)
		}
	}
	docket, err := proposal.NewDocket(data.Proposals, opts.VoteThreshold, opts.Clock)
	if err != nil {
		return nil, errors.Wrap(err, "build docket")
	}
	for _, s := range data.Statements {
		if _, err := r.Politician(s.PoliticianID); err != nil {
			return nil, errors.Wrapf(err, "statement %s", s.ID)
		}
		if _, err := docket.Get(s.LawID); err != nil {
			return nil, errors.Wrapf(err, "statement %s", s.ID)
		}
	}

	selector := debate.NewSelector(opts.Rand, opts.RecentSpeakerWindow)

	p := &Parliament{
		roster: r,
		docket: docket,
		ledger: debate.NewLedger(data.Statements),
		gen:    debate.NewGenerator(selector, opts.Clock, opts.NewStatementID),
		window: opts.RecentSpeakerWindow,
		now:    opts.Clock,
		bus:    opts.Bus,
		logger: opts.Logger.WithComponent("chamber"),
	}
	p.logger.Info("chamber ready",
		"groups", len(data.Groups),
		"politicians", len(data.Politicians),
		"proposals", docket.Len(),
		"statements", len(data.Statements),
		"vote_threshold", docket.Threshold(),
		"recent_speaker_window", p.window,
	)
	return p, nil
}

// Bus returns the event bus the chamber publishes to.
func (p *Parliament) Bus() *event.Bus {
	return p.bus
}

// Threshold returns the vote threshold.
func (p *Parliament) Threshold() int {
	return p.docket.Threshold()
}

// RecentSpeakerWindow returns the speaker exclusion window.
func (p *Parliament) RecentSpeakerWindow() int {
	return p.window
}

// ListGroups returns every parliamentary group.
func (p *Parliament) ListGroups() []roster.Group {
	return p.roster.Groups()
}

// ListPoliticians returns the members of groupID, or every politician when
// groupID is empty.
func (p *Parliament) ListPoliticians(groupID string) ([]roster.Politician, error) {
	if groupID == "" {
		return p.roster.Politicians(), nil
	}
	return p.roster.PoliticiansInGroup(groupID)
}

// Group looks up a group by id.
func (p *Parliament) Group(id string) (roster.Group, error) {
	return p.roster.Group(id)
}

// Politician looks up a politician by id.
func (p *Parliament) Politician(id string) (roster.Politician, error) {
	return p.roster.Politician(id)
}

// Speaker resolves the politician and group behind a statement.
func (p *Parliament) Speaker(s debate.Statement) (roster.Politician, roster.Group, error) {
	pol, err := p.roster.Politician(s.PoliticianID)
	if err != nil {
		return roster.Politician{}, roster.Group{}, err
	}
	g, err := p.roster.Group(pol.GroupID)
	if err != nil {
		return roster.Politician{}, roster.Group{}, err
	}
	return pol, g, nil
}

// ListProposals returns the docket in submission order.
func (p *Parliament) ListProposals() []proposal.Proposal {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.docket.List()
}

// Proposal returns one proposal.
func (p *Parliament) Proposal(id string) (proposal.Proposal, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.docket.Get(id)
}

// ActiveProposal returns the proposal under debate, if any.
func (p *Parliament) ActiveProposal() (proposal.Proposal, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.docket.Active()
}

// Summary returns the number of proposals in each status.
func (p *Parliament) Summary() map[proposal.Status]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.docket.Counts()
}

// StatementsFor returns the transcript of a proposal in timestamp order.
func (p *Parliament) StatementsFor(proposalID string) ([]debate.Statement, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, err := p.docket.Get(proposalID); err != nil {
		return nil, err
	}
	var out []debate.Statement
	for s := range p.ledger.StatementsFor(proposalID) {
		out = append(out, s)
	}
	return out, nil
}
