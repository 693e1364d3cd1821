package board

import (
	"io"

	"github.com/VictoriaMetrics/metrics"
)

// boardMetrics holds the per-board operation counters. All methods are
// nil-safe so call sites don't have to check whether metrics are enabled.
type boardMetrics struct {
	set *metrics.Set

	writes       *metrics.Counter
	reads        *metrics.Counter
	materialized *metrics.Counter
	wipes        *metrics.Counter
	callbacks    *metrics.Counter
}

func newBoardMetrics() *boardMetrics {
	set := metrics.NewSet()
	return &boardMetrics{
		set:          set,
		writes:       set.NewCounter("blackboard_writes_total"),
		reads:        set.NewCounter("blackboard_reads_total"),
		materialized: set.NewCounter("blackboard_reads_materialized_total"),
		wipes:        set.NewCounter("blackboard_wipes_total"),
		callbacks:    set.NewCounter("blackboard_callbacks_fired_total"),
	}
}

func (m *boardMetrics) countWrite() {
	if m == nil {
		return
	}
	m.writes.Inc()
}

func (m *boardMetrics) countRead(materialized bool) {
	if m == nil {
		return
	}
	m.reads.Inc()
	if materialized {
		m.materialized.Inc()
	}
}

func (m *boardMetrics) countWipe() {
	if m == nil {
		return
	}
	m.wipes.Inc()
}

func (m *boardMetrics) countCallbacks(n int) {
	if m == nil || n == 0 {
		return
	}
	m.callbacks.Add(n)
}

// WritePrometheus writes the Board's operation counters to w in Prometheus
// text exposition format. It writes nothing when metrics are disabled.
func (b *Board) WritePrometheus(w io.Writer) {
	if b.stats == nil {
		return
	}
	b.stats.set.WritePrometheus(w)
}
