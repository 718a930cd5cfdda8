// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes the server's Prometheus collectors: codec
// operations, HTTP requests and the Playfair square cache.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cipher_chat"

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics owns a private registry so several instances (tests, embedded
// servers) never collide on the global one.
type Metrics struct {
	registry *prometheus.Registry

	cipherOperations *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	captchaResults   *prometheus.CounterVec
}

// New builds the collectors and registers them together with the Go and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		cipherOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cipher_operations_total",
				Help:      "Number of encrypt and decrypt calls per algorithm",
			},
			[]string{"algorithm", "operation", "result"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Number of handled HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		captchaResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "captcha_verifications_total",
				Help:      "Number of captcha verifications by outcome",
			},
			[]string{"result"},
		),
	}

	m.registry.MustRegister(
		m.cipherOperations,
		m.httpRequests,
		m.httpDuration,
		m.captchaResults,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveCipher counts one codec call.
func (m *Metrics) ObserveCipher(algorithm, operation string, err error) {
	m.cipherOperations.WithLabelValues(algorithm, operation, result(err)).Inc()
}

// ObserveRequest records one HTTP request. route is the chi route pattern,
// not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveCaptcha counts one captcha verification.
func (m *Metrics) ObserveCaptcha(err error) {
	m.captchaResults.WithLabelValues(result(err)).Inc()
}

// RegisterSquareCache exposes the number of cached Playfair squares.
func (m *Metrics) RegisterSquareCache(length func() int) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "playfair_cached_squares",
			Help:      "Number of Playfair squares held in the LRU cache",
		},
		func() float64 { return float64(length()) },
	))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
