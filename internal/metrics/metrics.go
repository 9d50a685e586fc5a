// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package metrics exposes navigation build statistics to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/zimsendapi/docs/internal/build"
	"github.com/zimsendapi/docs/internal/errors"
	"github.com/zimsendapi/docs/internal/nav"
)

// Build results used as the "result" label.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics holds the build metrics.
type Metrics struct {
	Builds        *prometheus.CounterVec
	BuildErrors   *prometheus.CounterVec
	BuildDuration prometheus.Histogram

	// State of the last successful build
	Operations   prometheus.Gauge
	Tags         prometheus.Gauge
	ContentPages prometheus.Gauge
	SidebarNodes *prometheus.GaugeVec
}

// NewMetrics creates the build metrics. They are not registered.
func NewMetrics() *Metrics {
	return &Metrics{
		Builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "navgen_builds_total",
			Help: "Total number of navigation builds by result",
		}, []string{"result"}),
		BuildErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "navgen_build_errors_total",
			Help: "Total number of failed navigation builds by error kind",
		}, []string{"kind"}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "navgen_build_duration_seconds",
			Help:    "Duration of successful navigation builds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
		Operations: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "navgen_operations",
			Help: "Number of operations listed in the API reference",
		}),
		Tags: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "navgen_tags",
			Help: "Number of tag categories in the API reference",
		}),
		ContentPages: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "navgen_content_pages",
			Help: "Number of document ids known to the last build",
		}),
		SidebarNodes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "navgen_sidebar_nodes",
			Help: "Number of nodes per sidebar, category landing pages excluded",
		}, []string{"sidebar"}),
	}
}

// Describe implements prometheus.Collector
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.Builds.Describe(ch)
	m.BuildErrors.Describe(ch)
	m.BuildDuration.Describe(ch)

	m.Operations.Describe(ch)
	m.Tags.Describe(ch)
	m.ContentPages.Describe(ch)
	m.SidebarNodes.Describe(ch)
}

// Collect implements prometheus.Collector
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.Builds.Collect(ch)
	m.BuildErrors.Collect(ch)
	m.BuildDuration.Collect(ch)

	m.Operations.Collect(ch)
	m.Tags.Collect(ch)
	m.ContentPages.Collect(ch)
	m.SidebarNodes.Collect(ch)
}

// Register registers the metrics with reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	return reg.Register(m)
}

// ObserveBuild records the outcome of one build. res is ignored when err is
// set.
func (m *Metrics) ObserveBuild(res *build.Result, err error) {
	if err != nil {
		m.Builds.WithLabelValues(ResultFailure).Inc()
		m.BuildErrors.WithLabelValues(errors.GetKind(err).String()).Inc()
		return
	}
	m.Builds.WithLabelValues(ResultSuccess).Inc()
	m.BuildDuration.Observe(res.Duration.Seconds())

	m.Operations.Set(float64(res.Catalog.OperationCount()))
	m.Tags.Set(float64(len(res.Catalog.Tags)))
	m.ContentPages.Set(float64(len(res.Content)))
	m.SidebarNodes.Reset()
	for _, sb := range res.Tree.Sidebars {
		m.SidebarNodes.WithLabelValues(sb.Name).Set(float64(nav.Count(sb.Items)))
	}
}
