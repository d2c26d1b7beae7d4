// SPDX-License-Identifier: MIT

package metrics

import (
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports every key of a Store as one gauge, labelled by key.
// It is unchecked: the key set is only known at scrape time.
type Collector struct {
	store  Store
	desc   *prometheus.Desc
	logger *slog.Logger
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector exposes s under "<namespace>_counter{key=...}".
// A nil logger discards scrape errors.
func NewCollector(s Store, namespace string, logger *slog.Logger) *Collector {
	return &Collector{
		store: s,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(sanitize(namespace), "", "counter"),
			"Value of a named counter.",
			[]string{"key"}, nil,
		),
		logger: logger,
	}
}

// Describe sends nothing, which marks the collector unchecked.
func (c *Collector) Describe(chan<- *prometheus.Desc) {}

// Collect snapshots the store; a failing snapshot yields no samples.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap, err := c.store.Snapshot()
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("metrics snapshot failed", slog.Any("error", err))
		}
		return
	}
	for _, k := range SortedKeys(snap) {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(snap[k]), k)
	}
}

// sanitize maps a free-form namespace onto the metric-name alphabet.
func sanitize(ns string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, ns)
}
