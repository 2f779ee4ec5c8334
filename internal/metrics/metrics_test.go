package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCollectors_NoDuplicatePanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NotPanics(t, func() {
		RegisterCollectors(reg)
	})

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestCacheHits_IncrementsByTier(t *testing.T) {
	reg := prometheus.NewRegistry()
	RegisterCollectors(reg)

	CacheHits.WithLabelValues("l1").Inc()
	CacheHits.WithLabelValues("l2").Inc()

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() == "resumegen_cache_hits_total" {
			found = true
			assert.Len(t, f.GetMetric(), 2)
		}
	}
	assert.True(t, found)
}
