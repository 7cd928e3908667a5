package debate

import (
	"time"

	"github.com/google/uuid"

	"github.com/Iron-Ham/parliament/internal/errors"
	"github.com/Iron-Ham/parliament/internal/roster"
)

// IDFunc returns a fresh statement id.
type IDFunc func() string

// NewStatementID returns an id of the form "stmt_<uuid>".
func NewStatementID() string {
	return "stmt_" + uuid.NewString()
}

// Generator assembles complete statements from a Selector, a clock and an
// id source.
type Generator struct {
	selector *Selector
	now      func() time.Time
	newID    IDFunc
}

// NewGenerator creates a Generator. A nil clock uses time.Now and a nil id
// function uses NewStatementID.
func NewGenerator(selector *Selector, now func() time.Time, newID IDFunc) *Generator {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = NewStatementID
	}
	return &Generator{selector: selector, now: now, newID: newID}
}

// Selector returns the generator's selector.
func (g *Generator) Selector() *Selector {
	return g.selector
}

// Generated is a new statement with the speaker and group that produced it.
type Generated struct {
	Statement Statement
	Speaker   roster.Politician
	Group     roster.Group
}

// Generate picks a speaker from r who is not among the authors of recent,
// picks a response for the speaker's orientation, and returns the resulting
// statement on lawID. It does not append to any ledger.
func (g *Generator) Generate(lawID string, r *roster.Roster, recent []Statement) (Generated, error) {
	speaker, err := g.selector.ChooseSpeaker(r.Politicians(), recent)
	if err != nil {
		var debateErr *errors.DebateError
		if errors.As(err, &debateErr) {
			debateErr.WithLaw(lawID)
		}
		return Generated{}, err
	}

	group, err := r.Group(speaker.GroupID)
	if err != nil {
		return Generated{}, err
	}

	return Generated{
		Statement: Statement{
			ID:           g.newID(),
			PoliticianID: speaker.ID,
			LawID:        lawID,
			Content:      g.selector.GenerateResponse(group.Orientation),
			Timestamp:    g.now(),
		},
		Speaker: speaker,
		Group:   group,
	}, nil
}
