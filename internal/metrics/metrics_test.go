package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zgpcy/worktime/internal/convert"
)

func TestObserveConversion_CountsByOutcome(t *testing.T) {
	m := New()

	m.ObserveConversion(convert.OutcomeConverted)
	m.ObserveConversion(convert.OutcomeConverted)
	m.ObserveConversion(convert.OutcomeInvalid)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.conversionsTotal.WithLabelValues("converted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conversionsTotal.WithLabelValues("invalid")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.conversionsTotal.WithLabelValues("none")))
}

func TestObserveRefresh_SetsTimestamp(t *testing.T) {
	m := New()
	at := time.Date(2026, time.January, 15, 15, 0, 0, 0, time.UTC)

	m.ObserveRefresh(at)
	m.ObserveRefresh(at)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.refreshesTotal))
	assert.Equal(t, float64(at.Unix()), testutil.ToFloat64(m.lastRefresh))
}

func TestObserveReset_CountsByMode(t *testing.T) {
	m := New()

	m.ObserveReset("restart")
	m.ObserveReset("stacked")
	m.ObserveReset("stacked")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.resetsTotal.WithLabelValues("restart")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.resetsTotal.WithLabelValues("stacked")))
}

func TestRegistry_MetricNames(t *testing.T) {
	m := New()
	m.ObserveReset("restart")

	// converted, invalid and none series are pre-created
	assert.Equal(t, 3, testutil.CollectAndCount(m.conversionsTotal))

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"worktime_build_info",
		"worktime_clock_refreshes_total",
		"worktime_conversions_total",
		"worktime_last_refresh_timestamp_seconds",
		"worktime_resets_total",
	}, names)
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.ObserveConversion(convert.OutcomeInvalid)

	path := filepath.Join(t.TempDir(), "worktime.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.Contains(text, `worktime_conversions_total{outcome="invalid"} 1`), text)
	assert.Contains(t, text, "worktime_build_info")
}

func TestWriteTextfile_BadDirectory_Error(t *testing.T) {
	m := New()
	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "worktime.prom"))
	assert.Error(t, err)
}
