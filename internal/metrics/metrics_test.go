package metrics

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iron-Ham/parliament/internal/event"
)

func TestRecorder_CountsBusEvents(t *testing.T) {
	bus := event.NewBus(nil)
	rec := NewRecorder()
	rec.Attach(bus)

	now := time.Now()
	bus.Publish(event.NewVoteCastEvent(now, "law1", "for", "debating"))
	bus.Publish(event.NewVoteCastEvent(now, "law1", "for", "debating"))
	bus.Publish(event.NewVoteCastEvent(now, "law1", "abstain", "debating"))
	bus.Publish(event.NewStatementAddedEvent(now, "s1", "law1", "g1", "greens", "left_wing", "x"))
	bus.Publish(event.NewProposalSubmittedEvent(now, "law6", "T", "greens", []string{"general"}))
	bus.Publish(event.NewDebateOpenedEvent(now, "law6", "T", "law1"))
	bus.Publish(event.NewProposalResolvedEvent(now, "law6", "T", "rejected", 20, 30, 4))

	assert.InDelta(t, 2, testutil.ToFloat64(rec.votes.WithLabelValues("for")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(rec.votes.WithLabelValues("abstain")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(rec.votes.WithLabelValues("against")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(rec.statements.WithLabelValues("left_wing")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(rec.submissions), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(rec.debates), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(rec.resolutions.WithLabelValues("rejected")), 0)
}

func TestRecorder_WriteText(t *testing.T) {
	rec := NewRecorder()
	rec.Observe(event.NewVoteCastEvent(time.Now(), "law1", "against", "pending"))

	var buf bytes.Buffer
	require.NoError(t, rec.WriteText(&buf))

	out := buf.String()
	assert.Contains(t, out, "# TYPE parliament_votes_total counter")
	assert.Contains(t, out, `parliament_votes_total{choice="against"} 1`)
}

func TestRecorder_IndependentRegistries(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	a.Observe(event.NewDebateOpenedEvent(time.Now(), "law2", "T", ""))

	assert.InDelta(t, 1, testutil.ToFloat64(a.debates), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(b.debates), 0)
}
