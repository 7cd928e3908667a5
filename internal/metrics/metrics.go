// Package metrics counts chamber activity with Prometheus collectors fed from
// the event bus.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/Iron-Ham/parliament/internal/event"
)

const namespace = "parliament"

// Recorder owns a private registry so that independent chambers in one
// process do not collide on the default registry.
type Recorder struct {
	registry *prometheus.Registry

	votes       *prometheus.CounterVec
	statements  *prometheus.CounterVec
	resolutions *prometheus.CounterVec
	submissions prometheus.Counter
	debates     prometheus.Counter
	margin      prometheus.Histogram
}

// NewRecorder creates a Recorder with every collector registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		votes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_total",
			Help:      "Votes cast, by choice.",
		}, []string{"choice"}),
		statements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "statements_total",
			Help:      "Debate statements added, by speaker orientation.",
		}, []string{"orientation"}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "proposals_resolved_total",
			Help:      "Proposals that reached a terminal status, by outcome.",
		}, []string{"outcome"}),
		submissions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "proposals_submitted_total",
			Help:      "Proposals submitted to the docket.",
		}),
		debates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "debates_opened_total",
			Help:      "Times a proposal was opened for debate.",
		}),
		margin: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "resolution_margin",
			Help:      "Absolute difference between for and against votes when a proposal resolves.",
			Buckets:   []float64{0, 2, 5, 10, 20, 35, 50},
		}),
	}

	r.registry.MustRegister(r.votes, r.statements, r.resolutions, r.submissions, r.debates, r.margin)
	return r
}

// Registry returns the recorder's registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Attach subscribes the recorder to bus and returns the subscription id.
func (r *Recorder) Attach(bus *event.Bus) string {
	return bus.SubscribeAll(r.Observe)
}

// Observe updates the collectors for one chamber event. Unknown events are ignored.
func (r *Recorder) Observe(e event.Event) {
	switch ev := e.(type) {
	case event.VoteCastEvent:
		r.votes.WithLabelValues(ev.Choice).Inc()
	case event.StatementAddedEvent:
		r.statements.WithLabelValues(ev.Orientation).Inc()
	case event.ProposalSubmittedEvent:
		r.submissions.Inc()
	case event.DebateOpenedEvent:
		r.debates.Inc()
	case event.ProposalResolvedEvent:
		r.resolutions.WithLabelValues(ev.Outcome).Inc()
		diff := ev.For - ev.Against
		if diff < 0 {
			diff = -diff
		}
		r.margin.Observe(float64(diff))
	}
}

// WriteText writes every metric in the Prometheus text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
