package analytics_test

import (
	"testing"

	"github.com/misterclayt0n/gymlog/internal/analytics"
	"github.com/misterclayt0n/gymlog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE1RM(t *testing.T) {
	assert.Equal(t, 100.0, analytics.E1RM(100, 0))
	assert.Equal(t, 100.0, analytics.E1RM(100, -5))
	assert.Equal(t, 0.0, analytics.E1RM(0, 8))
	assert.InDelta(t, 133.3333, analytics.E1RM(100, 10), 0.0001)
	assert.InDelta(t, 100*(1+1.0/30), analytics.E1RM(100, 1), 1e-9)
}

func TestMetric_Of(t *testing.T) {
	sets := []models.Set{set(80, 5), set(100, 1), set(90, 8)}

	assert.Equal(t, 100.0, analytics.MetricMaxLoad.Of(sets))
	assert.InDelta(t, 90*(1+8.0/30), analytics.MetricMaxE1RM.Of(sets), 1e-9)

	assert.Equal(t, 0.0, analytics.MetricMaxLoad.Of(nil))
	assert.Equal(t, 0.0, analytics.MetricMaxE1RM.Of([]models.Set{}))
}

func TestParseMetric(t *testing.T) {
	m, err := analytics.ParseMetric("E1RM")
	require.NoError(t, err)
	assert.Equal(t, analytics.MetricMaxE1RM, m)

	m, err = analytics.ParseMetric("")
	require.NoError(t, err)
	assert.Equal(t, analytics.MetricMaxLoad, m)

	_, err = analytics.ParseMetric("volume")
	assert.Error(t, err)
}
