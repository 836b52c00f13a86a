package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrument_CountsByCodeAndMethod(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	m := New()
	c := &http.Client{Transport: m.Instrument("backend", nil)}

	for _, p := range []string{"/a", "/b", "/missing"} {
		resp, err := c.Get(srv.URL + p)
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	samples, err := m.Snapshot()
	require.NoError(t, err)

	got := map[string]float64{}
	for _, s := range samples {
		if s.Name == "travel_client_http_requests_total" {
			assert.Equal(t, "backend", s.Labels["target"])
			got[s.Labels["code"]] = s.Value
		}
	}
	assert.Equal(t, map[string]float64{"200": 2, "404": 1}, got)

	n, err := testutil.GatherAndCount(m.Registry(), "travel_client_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestInstrument_SameTargetTwiceReusesCollectors(t *testing.T) {
	m := New()
	require.NotPanics(t, func() {
		m.Instrument("geocoder", nil)
		m.Instrument("geocoder", nil)
		m.Instrument("backend", nil)
	})
}

func TestSnapshot_Empty(t *testing.T) {
	samples, err := New().Snapshot()
	require.NoError(t, err)
	assert.Empty(t, samples)
}
