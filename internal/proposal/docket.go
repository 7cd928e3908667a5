package proposal

import (
	"fmt"
	"time"

	"github.com/Iron-Ham/parliament/internal/errors"
)

// DefaultThreshold is the number of for+against votes that resolves a proposal.
const DefaultThreshold = 50

// Docket is the ordered set of proposals. It is not safe for concurrent use;
// the chamber serializes access.
type Docket struct {
	proposals []Proposal
	index     map[string]int
	threshold int
	now       func() time.Time
}

// NewDocket builds a docket from seed proposals. Ids must be unique, votes
// non-negative, and at most one proposal may be debating. Open proposals must
// sit below the threshold. A threshold below 1 uses DefaultThreshold.
func NewDocket(seed []Proposal, threshold int, now func() time.Time) (*Docket, error) {
	if threshold < 1 {
		threshold = DefaultThreshold
	}
	if now == nil {
		now = time.Now
	}
	d := &Docket{
		index:     make(map[string]int, len(seed)),
		threshold: threshold,
		now:       now,
	}

	debating := ""
	for _, p := range seed {
		if p.ID == "" {
			return nil, seedErr("proposal id is required", "id", "")
		}
		if _, dup := d.index[p.ID]; dup {
			return nil, seedErr("duplicate proposal id", "id", p.ID)
		}
		if p.Status == "" {
			p.Status = StatusPending
		}
		if !p.Status.Valid() {
			return nil, seedErr("unknown status", "status", p.Status)
		}
		if p.Votes.For < 0 || p.Votes.Against < 0 || p.Votes.Abstain < 0 {
			return nil, seedErr("votes must be non-negative", "votes", p.Votes)
		}
		if !p.Status.IsTerminal() && p.Votes.Decisive() >= threshold {
			return nil, seedErr(fmt.Sprintf("open proposal %s has reached the vote threshold", p.ID), "votes", p.Votes)
		}
		if p.Status == StatusDebating {
			if debating != "" {
				return nil, seedErr(fmt.Sprintf("proposals %s and %s are both debating", debating, p.ID), "status", p.Status)
			}
			debating = p.ID
		}
		p.Tags = NormalizeTags(p.Tags)
		d.index[p.ID] = len(d.proposals)
		d.proposals = append(d.proposals, p.clone())
	}
	return d, nil
}

func seedErr(msg, field string, value any) error {
	return errors.NewValidationError(msg).WithField(field).WithValue(value).WithCause(errors.ErrSeedInvalid)
}

// Threshold returns the resolution threshold.
func (d *Docket) Threshold() int {
	return d.threshold
}

// Len returns the number of proposals.
func (d *Docket) Len() int {
	return len(d.proposals)
}

// List returns every proposal in docket order.
func (d *Docket) List() []Proposal {
	out := make([]Proposal, len(d.proposals))
	for i, p := range d.proposals {
		out[i] = p.clone()
	}
	return out
}

// Get returns a proposal by id.
func (d *Docket) Get(id string) (Proposal, error) {
	i, ok := d.index[id]
	if !ok {
		return Proposal{}, errors.ProposalNotFound(id)
	}
	return d.proposals[i].clone(), nil
}

// Active returns the proposal under debate, if any.
func (d *Docket) Active() (Proposal, bool) {
	for _, p := range d.proposals {
		if p.Status == StatusDebating {
			return p.clone(), true
		}
	}
	return Proposal{}, false
}

// Selection reports the outcome of SelectForDebate.
type Selection struct {
	Proposal Proposal
	// Demoted is the id of the proposal returned to pending, if any.
	Demoted string
	// Changed is false when the target was already under debate.
	Changed bool
}

// SelectForDebate opens a proposal for debate, returning any other debating
// proposal to pending. Unknown ids and terminal proposals are rejected
// without changing state.
func (d *Docket) SelectForDebate(id string) (Selection, error) {
	i, ok := d.index[id]
	if !ok {
		return Selection{}, errors.ProposalNotFound(id)
	}
	target := &d.proposals[i]
	if target.Status.IsTerminal() {
		return Selection{}, errors.NewStateError("cannot open debate", id, string(target.Status))
	}
	if target.Status == StatusDebating {
		return Selection{Proposal: target.clone()}, nil
	}

	sel := Selection{Changed: true}
	for j := range d.proposals {
		if d.proposals[j].Status == StatusDebating {
			d.proposals[j].Status = StatusPending
			sel.Demoted = d.proposals[j].ID
		}
	}
	target.Status = StatusDebating
	sel.Proposal = target.clone()
	return sel, nil
}

// VoteResult reports the outcome of Vote.
type VoteResult struct {
	Proposal Proposal
	// Resolved is true when this vote moved the proposal to a terminal status.
	Resolved bool
}

// Vote records one vote. Once for+against reaches the threshold the proposal
// passes if for > against and is rejected otherwise. Abstentions are counted
// but never resolve a proposal. Votes on terminal proposals are rejected and
// leave the tally unchanged.
func (d *Docket) Vote(id string, choice Choice) (VoteResult, error) {
	i, ok := d.index[id]
	if !ok {
		return VoteResult{}, errors.ProposalNotFound(id)
	}
	p := &d.proposals[i]
	if p.Status.IsTerminal() {
		return VoteResult{}, errors.NewStateError("cannot vote", id, string(p.Status))
	}

	switch choice {
	case ChoiceFor:
		p.Votes.For++
	case ChoiceAgainst:
		p.Votes.Against++
	case ChoiceAbstain:
		p.Votes.Abstain++
	default:
		return VoteResult{}, errors.NewValidationError(fmt.Sprintf("unknown vote choice %q", choice)).WithField("choice")
	}

	res := VoteResult{}
	if choice != ChoiceAbstain && p.Votes.Decisive() >= d.threshold {
		if p.Votes.For > p.Votes.Against {
			p.Status = StatusPassed
		} else {
			p.Status = StatusRejected
		}
		res.Resolved = true
	}
	res.Proposal = p.clone()
	return res, nil
}

// Submit validates a request and appends a new pending proposal with zero
// votes. The id is law<N> with N one past the docket size, skipping ids
// already taken.
func (d *Docket) Submit(req SubmitRequest) (Proposal, error) {
	req, err := req.Normalize()
	if err != nil {
		return Proposal{}, err
	}

	n := len(d.proposals) + 1
	id := fmt.Sprintf("law%d", n)
	for {
		if _, taken := d.index[id]; !taken {
			break
		}
		n++
		id = fmt.Sprintf("law%d", n)
	}

	p := Proposal{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		ProposedBy:  req.ProposedBy,
		Status:      StatusPending,
		Tags:        req.Tags,
		SubmittedAt: d.now(),
	}
	d.index[id] = len(d.proposals)
	d.proposals = append(d.proposals, p)
	return p.clone(), nil
}

// Counts returns the number of proposals in each status.
func (d *Docket) Counts() map[Status]int {
	counts := make(map[Status]int, 4)
	for _, p := range d.proposals {
		counts[p.Status]++
	}
	return counts
}
