package parliament

import (
	"github.com/Iron-Ham/parliament/internal/debate"
	"github.com/Iron-Ham/parliament/internal/errors"
	"github.com/Iron-Ham/parliament/internal/event"
	"github.com/Iron-Ham/parliament/internal/proposal"
)

// SelectForDebate opens a proposal for debate. Any proposal already under
// debate returns to pending. Selecting the current debate is a no-op.
func (p *Parliament) SelectForDebate(id string) (proposal.Proposal, error) {
	p.mu.Lock()
	sel, err := p.docket.SelectForDebate(id)
	p.mu.Unlock()

	log := p.logger.WithProposal(id)
	if err != nil {
		log.Warn("select for debate rejected", "error", err.Error())
		return proposal.Proposal{}, err
	}
	if !sel.Changed {
		return sel.Proposal, nil
	}

	log.Info("debate opened", "demoted", sel.Demoted)
	p.bus.Publish(event.NewDebateOpenedEvent(p.now(), sel.Proposal.ID, sel.Proposal.Title, sel.Demoted))
	return sel.Proposal, nil
}

// Vote records one vote on a proposal and resolves it once the threshold is
// reached. Votes on passed or rejected proposals are refused.
func (p *Parliament) Vote(id string, choice proposal.Choice) (proposal.Proposal, error) {
	p.mu.Lock()
	res, err := p.docket.Vote(id, choice)
	p.mu.Unlock()

	log := p.logger.WithProposal(id)
	if err != nil {
		log.Warn("vote rejected", "choice", string(choice), "error", err.Error())
		return proposal.Proposal{}, err
	}

	pr := res.Proposal
	log.Debug("vote cast", "choice", string(choice), "for", pr.Votes.For, "against", pr.Votes.Against, "abstain", pr.Votes.Abstain)

	at := p.now()
	p.bus.Publish(event.NewVoteCastEvent(at, pr.ID, string(choice), string(pr.Status)))
	if res.Resolved {
		log.Info("proposal resolved", "outcome", string(pr.Status), "for", pr.Votes.For, "against", pr.Votes.Against)
		p.bus.Publish(event.NewProposalResolvedEvent(at, pr.ID, pr.Title, string(pr.Status), pr.Votes.For, pr.Votes.Against, pr.Votes.Abstain))
	}
	return pr, nil
}

// SubmitProposal validates and appends a new pending proposal. The proposing
// group must exist.
func (p *Parliament) SubmitProposal(req proposal.SubmitRequest) (proposal.Proposal, error) {
	p.mu.Lock()
	pr, err := p.submitLocked(req)
	p.mu.Unlock()

	if err != nil {
		p.logger.Warn("submission rejected", "title", req.Title, "error", err.Error())
		return proposal.Proposal{}, err
	}

	p.logger.WithProposal(pr.ID).Info("proposal submitted", "title", pr.Title, "proposed_by", pr.ProposedBy, "tags", pr.Tags)
	p.bus.Publish(event.NewProposalSubmittedEvent(pr.SubmittedAt, pr.ID, pr.Title, pr.ProposedBy, pr.Tags))
	return pr, nil
}

func (p *Parliament) submitLocked(req proposal.SubmitRequest) (proposal.Proposal, error) {
	// field checks run before the group lookup so an empty proposer reports
	// a validation error rather than an unknown group
	req, err := req.Normalize()
	if err != nil {
		return proposal.Proposal{}, err
	}
	if _, err := p.roster.Group(req.ProposedBy); err != nil {
		return proposal.Proposal{}, err
	}
	return p.docket.Submit(req)
}

// GenerateStatement produces a statement on a proposal from a politician who
// has not spoken in the last few statements, and appends it to the ledger.
func (p *Parliament) GenerateStatement(proposalID string) (debate.Statement, error) {
	p.mu.Lock()
	g, err := p.generateLocked(proposalID)
	p.mu.Unlock()

	log := p.logger.WithProposal(proposalID)
	if err != nil {
		log.Warn("statement not generated", "error", err.Error())
		return debate.Statement{}, err
	}

	s := g.Statement
	log.WithPolitician(s.PoliticianID).Info("statement added", "statement_id", s.ID, "group", g.Group.ID)
	p.bus.Publish(event.NewStatementAddedEvent(s.Timestamp, s.ID, s.LawID, s.PoliticianID, g.Group.ID, string(g.Group.Orientation), s.Content))
	return s, nil
}

func (p *Parliament) generateLocked(proposalID string) (debate.Generated, error) {
	pr, err := p.docket.Get(proposalID)
	if err != nil {
		return debate.Generated{}, err
	}
	if pr.Status.IsTerminal() {
		return debate.Generated{}, errors.NewStateError("cannot debate", pr.ID, string(pr.Status))
	}

	g, err := p.gen.Generate(pr.ID, p.roster, p.ledger.Recent(p.window))
	if err != nil {
		return debate.Generated{}, err
	}
	p.ledger.Append(g.Statement)
	return g, nil
}
