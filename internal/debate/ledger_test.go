package debate

import (
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iron-Ham/parliament/internal/testutil"
)

func at(minutes int) time.Time {
	return testutil.Epoch.Add(time.Duration(minutes) * time.Minute)
}

func collect(l *Ledger, lawID string) []string {
	var ids []string
	for s := range l.StatementsFor(lawID) {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestLedger_StatementsForSorted(t *testing.T) {
	l := NewLedger([]Statement{
		{ID: "a", LawID: "law1", Timestamp: at(5)},
		{ID: "b", LawID: "law2", Timestamp: at(1)},
		{ID: "c", LawID: "law1", Timestamp: at(2)},
	})

	// appended out of order
	l.Append(Statement{ID: "d", LawID: "law1", Timestamp: at(1)})

	assert.Equal(t, []string{"d", "c", "a"}, collect(l, "law1"))
	assert.Equal(t, []string{"b"}, collect(l, "law2"))
	assert.Empty(t, collect(l, "law3"))
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, 3, l.CountFor("law1"))
}

func TestLedger_StableTies(t *testing.T) {
	l := NewLedger(nil)
	for _, id := range []string{"x", "y", "z"} {
		l.Append(Statement{ID: id, LawID: "law1", Timestamp: at(0)})
	}
	l.Append(Statement{ID: "early", LawID: "law1", Timestamp: at(-1)})

	assert.Equal(t, []string{"early", "x", "y", "z"}, collect(l, "law1"))
}

func TestLedger_StatementsForEarlyStop(t *testing.T) {
	l := NewLedger(nil)
	for i := range 5 {
		l.Append(Statement{ID: string(rune('a' + i)), LawID: "law1", Timestamp: at(i)})
	}

	var got []string
	for s := range l.StatementsFor("law1") {
		got = append(got, s.ID)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestLedger_Recent(t *testing.T) {
	l := NewLedger(nil)
	assert.Empty(t, l.Recent(3))

	for _, id := range []string{"1", "2", "3", "4"} {
		l.Append(Statement{ID: id, LawID: "law1"})
	}

	ids := func(ss []Statement) []string {
		var out []string
		for _, s := range ss {
			out = append(out, s.ID)
		}
		return out
	}
	assert.Equal(t, []string{"2", "3", "4"}, ids(l.Recent(3)))
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(l.Recent(10)))
	assert.Nil(t, l.Recent(0))
}

func TestLedger_AppendOnly(t *testing.T) {
	l := NewLedger(nil)
	l.Append(Statement{ID: "a", LawID: "law1"})

	all := l.All()
	all[0].Content = "mutated"

	require.Equal(t, 1, l.Len())
	assert.Empty(t, l.All()[0].Content)
}

func TestLedger_ConcurrentAppend(t *testing.T) {
	l := NewLedger(nil)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Go(func() {
			l.Append(Statement{ID: string(rune('A' + i)), LawID: "law1", Timestamp: at(i)})
		})
	}
	wg.Wait()

	got := collect(l, "law1")
	require.Len(t, got, 50)
	assert.True(t, slices.IsSortedFunc(slices.Collect(l.StatementsFor("law1")), func(a, b Statement) int {
		return a.Timestamp.Compare(b.Timestamp)
	}))
}
