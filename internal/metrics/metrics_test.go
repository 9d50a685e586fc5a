// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zimsendapi/docs/internal/build"
	"github.com/zimsendapi/docs/internal/content"
	"github.com/zimsendapi/docs/internal/errors"
	"github.com/zimsendapi/docs/internal/nav"
	"github.com/zimsendapi/docs/internal/openapi"
)

// gather returns metric values keyed by name and label value.
func gather(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				key += "/" + lp.GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				out[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[key] = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				out[key] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return out
}

func sampleResult() *build.Result {
	return &build.Result{
		Catalog: &openapi.Catalog{Tags: []openapi.Tag{
			{Name: "SMS", Operations: make([]openapi.Operation, 6)},
			{Name: "OTP", Operations: make([]openapi.Operation, 2)},
		}},
		Content: content.NewSet("intro", "faq", "errors"),
		Tree: &nav.Tree{Sidebars: []nav.Sidebar{
			{Name: "docsSidebar", Items: []nav.Node{
				&nav.DocRef{ID: "intro"},
				&nav.Category{Label: "Ref", Items: []nav.Node{&nav.DocRef{ID: "faq"}}},
				&nav.Link{Label: "Status", Href: "https://status.example"},
			}},
			{Name: "apisidebar", Items: []nav.Node{&nav.DocRef{ID: "api-overview"}}},
		}},
		Duration: 15 * time.Millisecond,
	}
}

func TestObserveBuild(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics()
	require.NoError(t, m.Register(reg))

	m.ObserveBuild(sampleResult(), nil)
	m.ObserveBuild(nil, errors.MergeConfigError("docsSidebar", []string{"missing"}))
	m.ObserveBuild(nil, errors.LoadError("openapi.yaml", "malformed"))

	got := gather(t, reg)
	assert.Equal(t, 1.0, got["navgen_builds_total/success"])
	assert.Equal(t, 2.0, got["navgen_builds_total/failure"])
	assert.Equal(t, 1.0, got["navgen_build_errors_total/merge_config"])
	assert.Equal(t, 1.0, got["navgen_build_errors_total/load"])
	assert.Equal(t, 1.0, got["navgen_build_duration_seconds"])
	assert.Equal(t, 8.0, got["navgen_operations"])
	assert.Equal(t, 2.0, got["navgen_tags"])
	assert.Equal(t, 3.0, got["navgen_content_pages"])
	assert.Equal(t, 4.0, got["navgen_sidebar_nodes/docsSidebar"])
	assert.Equal(t, 1.0, got["navgen_sidebar_nodes/apisidebar"])
}

func TestObserveBuild_ResetsSidebars(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics()
	require.NoError(t, m.Register(reg))

	m.ObserveBuild(sampleResult(), nil)
	res := sampleResult()
	res.Tree.Sidebars = res.Tree.Sidebars[:1]
	m.ObserveBuild(res, nil)

	got := gather(t, reg)
	_, stale := got["navgen_sidebar_nodes/apisidebar"]
	assert.False(t, stale)
}

func TestRegister_Twice(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics()
	require.NoError(t, m.Register(reg))
	assert.Error(t, m.Register(reg))
}
