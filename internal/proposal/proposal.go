// Package proposal implements the chamber's docket: law proposals, their
// status, and the vote tallies that resolve them.
//
// A proposal moves pending -> debating -> passed | rejected. Selecting another
// proposal for debate returns the current one to pending. Passed and rejected
// are terminal and frozen.
package proposal

import (
	"fmt"
	"strings"
	"time"

	"github.com/Iron-Ham/parliament/internal/errors"
)

// Status is a proposal's position in its lifecycle.
type Status string

const (
	StatusPending  Status = "pending"
	StatusDebating Status = "debating"
	StatusPassed   Status = "passed"
	StatusRejected Status = "rejected"
)

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusPassed || s == StatusRejected
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusDebating, StatusPassed, StatusRejected:
		return true
	}
	return false
}

// ParseStatus parses a status name case-insensitively.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", errors.NewValidationError(fmt.Sprintf("unknown status %q", s)).WithField("status")
	}
	return st, nil
}

// Choice is a single vote.
type Choice string

const (
	ChoiceFor     Choice = "for"
	ChoiceAgainst Choice = "against"
	ChoiceAbstain Choice = "abstain"
)

// ParseChoice parses a vote choice case-insensitively.
func ParseChoice(s string) (Choice, error) {
	c := Choice(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case ChoiceFor, ChoiceAgainst, ChoiceAbstain:
		return c, nil
	}
	return "", errors.NewValidationError(fmt.Sprintf("unknown vote choice %q", s)).WithField("choice").WithValue(s)
}

// Votes is the tally for one proposal. Counters only ever increase.
type Votes struct {
	For     int `json:"for"`
	Against int `json:"against"`
	Abstain int `json:"abstain"`
}

// Decisive is the number of votes that count toward the threshold.
func (v Votes) Decisive() int {
	return v.For + v.Against
}

// Total includes abstentions.
func (v Votes) Total() int {
	return v.For + v.Against + v.Abstain
}

// Proposal is a law proposal on the docket.
type Proposal struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ProposedBy  string    `json:"proposedBy"` // group id
	Status      Status    `json:"status"`
	Votes       Votes     `json:"votes"`
	Tags        []string  `json:"tags"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func (p Proposal) clone() Proposal {
	p.Tags = append([]string(nil), p.Tags...)
	return p
}

// SubmitRequest carries the fields of a new proposal.
type SubmitRequest struct {
	Title       string
	Description string
	ProposedBy  string
	Tags        []string
}

// DefaultTag is used when a submission carries no tags.
const DefaultTag = "general"

// Normalize trims and checks the request and dedupes its tags. Title,
// description and proposer are required.
func (r SubmitRequest) Normalize() (SubmitRequest, error) {
	out := SubmitRequest{
		Title:       strings.TrimSpace(r.Title),
		Description: strings.TrimSpace(r.Description),
		ProposedBy:  strings.TrimSpace(r.ProposedBy),
	}

	required := []struct {
		field, value string
	}{
		{"title", out.Title},
		{"description", out.Description},
		{"proposedBy", out.ProposedBy},
	}
	for _, f := range required {
		if f.value == "" {
			return SubmitRequest{}, errors.NewValidationError(f.field + " is required").WithField(f.field)
		}
	}

	out.Tags = NormalizeTags(r.Tags)
	return out, nil
}

// NormalizeTags trims tags, drops blanks and duplicates keeping the first
// occurrence, and falls back to the default tag.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	if len(out) == 0 {
		return []string{DefaultTag}
	}
	return out
}

// ParseTags splits a comma-separated tag list and normalizes it.
func ParseTags(s string) []string {
	return NormalizeTags(strings.Split(s, ","))
}
