package debate

import (
	"iter"
	"slices"
	"sync"
	"time"
)

// Statement is one remark made on the floor. Statements are immutable.
type Statement struct {
	ID           string    `json:"id"`
	PoliticianID string    `json:"politicianId"`
	LawID        string    `json:"lawId"`
	Content      string    `json:"content"`
	Timestamp    time.Time `json:"timestamp"`
}

// Ledger is the append-only record of statements.
type Ledger struct {
	mu         sync.RWMutex
	statements []Statement
}

// NewLedger creates a ledger holding the given statements in order.
func NewLedger(initial []Statement) *Ledger {
	return &Ledger{statements: slices.Clone(initial)}
}

// Append adds a statement to the end of the ledger. It never reorders or
// deduplicates.
func (l *Ledger) Append(s Statement) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.statements = append(l.statements, s)
}

// Len returns the number of statements recorded.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.statements)
}

// All returns every statement in append order.
func (l *Ledger) All() []Statement {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.statements)
}

// Recent returns the last n statements in append order, across all laws.
func (l *Ledger) Recent(n int) []Statement {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if n <= 0 {
		return nil
	}
	start := max(len(l.statements)-n, 0)
	return slices.Clone(l.statements[start:])
}

// StatementsFor yields the statements for lawID in ascending timestamp
// order. Ties keep append order. The sequence is a snapshot taken when
// iteration starts.
func (l *Ledger) StatementsFor(lawID string) iter.Seq[Statement] {
	return func(yield func(Statement) bool) {
		l.mu.RLock()
		var matched []Statement
		for _, s := range l.statements {
			if s.LawID == lawID {
				matched = append(matched, s)
			}
		}
		l.mu.RUnlock()

		slices.SortStableFunc(matched, func(a, b Statement) int {
			return a.Timestamp.Compare(b.Timestamp)
		})
		for _, s := range matched {
			if !yield(s) {
				return
			}
		}
	}
}

// CountFor returns the number of statements made on lawID.
func (l *Ledger) CountFor(lawID string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := 0
	for _, s := range l.statements {
		if s.LawID == lawID {
			n++
		}
	}
	return n
}
