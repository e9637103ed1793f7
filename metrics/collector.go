// Package metrics exposes emitter statistics to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sonirico/libee"
)

const namespace = "libee"

// StatsSource is anything that reports emitter statistics, such as
// *libee.Emitter or *libee.StatefulEmitter.
type StatsSource interface {
	Stats() libee.Stats
}

// Collector is a prometheus.Collector reading a StatsSource on every scrape.
type Collector struct {
	source StatsSource

	emitted   *prometheus.Desc
	failed    *prometheus.Desc
	delivered *prometheus.Desc
	active    *prometheus.Desc
	pending   *prometheus.Desc
}

// NewCollector builds a collector whose series carry an emitter="name"
// label. Register several collectors with distinct names to tell emitters
// apart.
func NewCollector(name string, source StatsSource) *Collector {
	labels := prometheus.Labels{"emitter": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", metric), help, nil, labels)
	}

	return &Collector{
		source:    source,
		emitted:   desc("emissions_total", "Number of Emit calls."),
		failed:    desc("emission_failures_total", "Number of Emit calls stopped by a listener error."),
		delivered: desc("deliveries_total", "Number of successful listener invocations."),
		active:    desc("listeners_active", "Number of armed listeners, pending ones included."),
		pending:   desc("listeners_pending", "Number of registrations waiting for the next Emit."),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.emitted
	ch <- c.failed
	ch <- c.delivered
	ch <- c.active
	ch <- c.pending
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.source.Stats()

	ch <- prometheus.MustNewConstMetric(c.emitted, prometheus.CounterValue, float64(s.Emitted))
	ch <- prometheus.MustNewConstMetric(c.failed, prometheus.CounterValue, float64(s.Failed))
	ch <- prometheus.MustNewConstMetric(c.delivered, prometheus.CounterValue, float64(s.Delivered))
	ch <- prometheus.MustNewConstMetric(c.active, prometheus.GaugeValue, float64(s.Active))
	ch <- prometheus.MustNewConstMetric(c.pending, prometheus.GaugeValue, float64(s.Pending))
}
