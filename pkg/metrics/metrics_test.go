package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	t.Parallel()
	var m *Metrics
	assert.False(t, m.IsEnabled())
	assert.NotPanics(t, func() {
		m.RecordMessageReceived("TRANSACTION", 1)
		m.RecordBundle("MintV1", OutcomeApplied)
		m.RecordProcessDuration("ACCOUNT", time.Second)
		m.SetCurrentSlot("ACCOUNT", 1)
	})

	disabled := New(Config{Enabled: false})
	assert.False(t, disabled.IsEnabled())
	assert.NotPanics(t, func() { disabled.RecordTaskEnqueued("download_metadata") })
}

func TestMetricsRecord(t *testing.T) {
	t.Parallel()
	m := New(Config{Enabled: true})
	m.RecordMessageReceived("TRANSACTION", 3)
	m.RecordBundle("Transfer", OutcomeStale)
	m.RecordBundle("Transfer", OutcomeStale)
	m.RecordMessageSkipped("ACCOUNT", "parsing_error")

	assert.Equal(t, 3.0, testutil.ToFloat64(m.MessagesReceived.WithLabelValues("TRANSACTION")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BundlesProcessed.WithLabelValues("Transfer", OutcomeStale)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MessagesSkipped.WithLabelValues("ACCOUNT", "parsing_error")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "bubblegum_bundles_processed_total"))
}
