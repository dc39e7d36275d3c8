package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qpcr/core/design"
)

func TestObserveRun(t *testing.T) {
	m := New(prometheus.NewRegistry())
	res := design.Result{Stats: design.Stats{
		SequenceLen: 20000, Truncated: true, ForwardCandidates: 490, ReverseCandidates: 490, PairsScored: 1234,
	}}
	m.ObserveRun(time.Now().Add(-10*time.Millisecond), res)

	assert.Equal(t, 1, testutil.CollectAndCount(m.DesignDuration))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Candidates))
	assert.InDelta(t, 20000, testutil.ToFloat64(m.SequenceBasePair), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.TruncatedInputs), 0)
}

func TestObserveResponseOutcomes(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveResponse(3, false)
	m.ObserveResponse(0, false)
	m.ObserveResponse(2, true)
	m.IncBadRequest()

	assert.InDelta(t, 1, testutil.ToFloat64(m.Requests.WithLabelValues(OutcomePairs)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Requests.WithLabelValues(OutcomeNoPairs)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Requests.WithLabelValues(OutcomeCached)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Requests.WithLabelValues(OutcomeBadRequest)), 0)
	assert.InDelta(t, 5, testutil.ToFloat64(m.PairsReturned), 0)
}

func TestHandlerExposition(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveResponse(1, false)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `qpcr_design_requests_total{outcome="pairs"} 1`)
	assert.Contains(t, string(body), "qpcr_design_pairs_returned_total 1")
}

func TestNewTwiceOnSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
