// Package metrics exports the propagation counters of a flow.ReactiveSystem
// as Prometheus metrics.
//
// A ReactiveSystem is single-threaded, so Collect reads its counters without
// locking. Gather from the goroutine that drives the graph, or between writes.
package metrics

import (
	"github.com/delaneyj/pushparty/flow"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystem = "flow"

type Collector struct {
	rs *flow.ReactiveSystem

	signals    *prometheus.Desc
	deliveries *prometheus.Desc
	recomputes *prometheus.Desc
	suppressed *prometheus.Desc
	emissions  *prometheus.Desc
	liveNodes  *prometheus.Desc
}

func NewCollector(rs *flow.ReactiveSystem, namespace string, labels prometheus.Labels) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystem, name), help, nil, labels)
	}
	return &Collector{
		rs:         rs,
		signals:    desc("signals_total", "Fan-outs started by graph nodes."),
		deliveries: desc("deliveries_total", "Values delivered to subscribers."),
		recomputes: desc("recomputes_total", "Derived node re-evaluations."),
		suppressed: desc("suppressed_total", "Writes and recomputes dropped because the value did not change."),
		emissions:  desc("emissions_total", "Values emitted by event node actions."),
		liveNodes:  desc("live_nodes", "Nodes that have not been closed."),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.signals
	ch <- c.deliveries
	ch <- c.recomputes
	ch <- c.suppressed
	ch <- c.emissions
	ch <- c.liveNodes
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.rs.Stats()
	counter := func(desc *prometheus.Desc, v uint64) {
		ch <- prometheus.MustNewConstMetric(desc, prometheus.CounterValue, float64(v))
	}
	counter(c.signals, stats.Signals)
	counter(c.deliveries, stats.Deliveries)
	counter(c.recomputes, stats.Recomputes)
	counter(c.suppressed, stats.Suppressed)
	counter(c.emissions, stats.Emissions)
	ch <- prometheus.MustNewConstMetric(c.liveNodes, prometheus.GaugeValue, float64(c.rs.Len()))
}
