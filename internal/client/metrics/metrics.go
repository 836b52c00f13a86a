// Package metrics counts and times outbound HTTP calls of the client.
package metrics

import (
	"errors"
	"net/http"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "travel_client"

// Metrics owns a private registry so several clients in one process, or
// tests, never collide on the global one.
type Metrics struct {
	registry *prometheus.Registry
}

func New() *Metrics {
	return &Metrics{registry: prometheus.NewRegistry()}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Instrument wraps next so every round trip is counted and timed under
// the given target label ("backend", "geocoder").
func (m *Metrics) Instrument(target string, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	labels := prometheus.Labels{"target": target}

	requests := register(m.registry, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   namespace,
		Name:        "http_requests_total",
		Help:        "Outbound HTTP requests by status code and method.",
		ConstLabels: labels,
	}, []string{"code", "method"}))

	duration := register(m.registry, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   namespace,
		Name:        "http_request_duration_seconds",
		Help:        "Outbound HTTP request latency.",
		ConstLabels: labels,
		Buckets:     prometheus.DefBuckets,
	}, []string{"code", "method"}))

	return promhttp.InstrumentRoundTripperCounter(requests,
		promhttp.InstrumentRoundTripperDuration(duration, next))
}

// register returns the already registered collector when c duplicates one.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// Sample is one flattened metric value.
type Sample struct {
	Name   string
	Labels map[string]string
	Value  float64
}

// Snapshot gathers the registry into flat samples sorted by name. Counters
// yield their value; histograms yield "<name>_count" and "<name>_sum".
func (m *Metrics) Snapshot() ([]Sample, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}

	var out []Sample
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			labels := labelMap(metric.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				out = append(out, Sample{Name: mf.GetName(), Labels: labels, Value: metric.GetCounter().GetValue()})
			case dto.MetricType_HISTOGRAM:
				h := metric.GetHistogram()
				out = append(out,
					Sample{Name: mf.GetName() + "_count", Labels: labels, Value: float64(h.GetSampleCount())},
					Sample{Name: mf.GetName() + "_sum", Labels: labels, Value: h.GetSampleSum()},
				)
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func labelMap(pairs []*dto.LabelPair) map[string]string {
	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		m[p.GetName()] = p.GetValue()
	}
	return m
}
