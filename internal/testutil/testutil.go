// Package testutil provides deterministic fixtures for chamber tests.
package testutil

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Iron-Ham/parliament/internal/roster"
)

// Epoch is the fixed start time used by test clocks.
var Epoch = time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)

// SeqRand returns values from a fixed sequence, each reduced modulo n.
// When the sequence is exhausted it starts over.
type SeqRand struct {
	mu     sync.Mutex
	values []int
	pos    int
	calls  int
}

// NewSeqRand creates a SeqRand. With no values it always returns 0.
func NewSeqRand(values ...int) *SeqRand {
	return &SeqRand{values: values}
}

// IntN returns the next value in the sequence modulo n.
func (r *SeqRand) IntN(n int) int {
	if n <= 0 {
		panic("testutil: IntN called with non-positive n")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.pos%len(r.values)]
	r.pos++
	return ((v % n) + n) % n
}

// Calls returns how many times IntN was called.
func (r *SeqRand) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// Clock is a manual clock that advances by Step on every call to Now.
type Clock struct {
	mu   sync.Mutex
	now  time.Time
	Step time.Duration
}

// NewClock returns a Clock starting at Epoch.
func NewClock(step time.Duration) *Clock {
	return &Clock{now: Epoch, Step: step}
}

// Now returns the current time and then advances the clock.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.Step)
	return t
}

// Set moves the clock to t.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// SequentialIDs returns an id function yielding prefix1, prefix2, ...
func SequentialIDs(prefix string) func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

// Roster builds a roster of groups x perGroup politicians. Groups cycle
// through the orientations left to right and are named grp0, grp1, ...;
// politicians are named <group>-p0, <group>-p1, ...
func Roster(t *testing.T, groups, perGroup int) *roster.Roster {
	t.Helper()

	orientations := roster.Orientations()
	var gs []roster.Group
	var ps []roster.Politician
	for g := range groups {
		id := fmt.Sprintf("grp%d", g)
		gs = append(gs, roster.Group{
			ID:          id,
			Name:        fmt.Sprintf("Group %d", g),
			Orientation: orientations[g%len(orientations)],
			SeatsCount:  perGroup,
		})
		for p := range perGroup {
			ps = append(ps, roster.Politician{
				ID:      fmt.Sprintf("%s-p%d", id, p),
				Name:    fmt.Sprintf("Member %d of %s", p, id),
				GroupID: id,
			})
		}
	}

	r, err := roster.New(gs, ps)
	if err != nil {
		t.Fatalf("testutil: build roster: %v", err)
	}
	return r
}
