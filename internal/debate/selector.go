package debate

import (
	"github.com/Iron-Ham/parliament/internal/errors"
	"github.com/Iron-Ham/parliament/internal/roster"
)

// Rand is the source of randomness for speaker and response selection.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// DefaultRecentWindow is how many recent statements exclude their speakers.
const DefaultRecentWindow = 3

// Selector chooses speakers and responses.
type Selector struct {
	rng    Rand
	window int
}

// NewSelector returns a Selector drawing from rng. A negative window uses
// DefaultRecentWindow; zero disables speaker exclusion.
func NewSelector(rng Rand, window int) *Selector {
	if window < 0 {
		window = DefaultRecentWindow
	}
	return &Selector{rng: rng, window: window}
}

// Window returns the number of recent statements whose speakers are excluded.
func (s *Selector) Window() int {
	return s.window
}

// ChooseSpeaker picks a politician uniformly from those who did not author
// any of the last Window() statements in recent. It returns
// ErrNoEligibleSpeaker when everyone is excluded.
func (s *Selector) ChooseSpeaker(politicians []roster.Politician, recent []Statement) (roster.Politician, error) {
	if len(recent) > s.window {
		recent = recent[len(recent)-s.window:]
	}
	excluded := make(map[string]bool, len(recent))
	for _, st := range recent {
		excluded[st.PoliticianID] = true
	}

	eligible := make([]roster.Politician, 0, len(politicians))
	for _, p := range politicians {
		if !excluded[p.ID] {
			eligible = append(eligible, p)
		}
	}
	if len(eligible) == 0 {
		return roster.Politician{}, errors.NewDebateError("choose speaker", errors.ErrNoEligibleSpeaker).WithWindow(s.window)
	}
	return eligible[s.rng.IntN(len(eligible))], nil
}

// GenerateResponse returns one of the canned statements for the orientation,
// chosen uniformly. Unknown orientations fall back to Center.
func (s *Selector) GenerateResponse(o roster.Orientation) string {
	r, ok := responses[o]
	if !ok {
		r = responses[roster.Center]
	}
	return r[s.rng.IntN(len(r))]
}
