// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics owns the Prometheus collectors exported by the Diwan API.

The remote poetry catalogue is unreliable by nature, so the interesting
signals are how often each probe succeeds, how often the curated fallback
is served, and how generation calls end.

Usage:

	m := metrics.New(prometheus.NewRegistry())
	m.RemoteFetch("poems", metrics.OutcomeSuccess)
	router.Handle("/metrics", m.Handler())
*/
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// # Outcomes

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeEmpty   = "empty"
)

// Metrics groups the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	gatherer    prometheus.Gatherer
	remoteFetch *prometheus.CounterVec
	fallback    *prometheus.CounterVec
	generation  *prometheus.CounterVec
	httpTotal   *prometheus.CounterVec
}

// New creates the collectors and registers them on registry.
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: registry,
		remoteFetch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "diwan",
			Name:      "remote_fetch_total",
			Help:      "Remote catalogue fetches by operation and outcome.",
		}, []string{"operation", "outcome"}),
		fallback: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "diwan",
			Name:      "fallback_total",
			Help:      "Responses served from the curated corpus instead of the remote catalogue.",
		}, []string{"operation"}),
		generation: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "diwan",
			Name:      "generation_total",
			Help:      "Verse generation requests by outcome.",
		}, []string{"outcome"}),
		httpTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "diwan",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "status"}),
	}

	registry.MustRegister(m.remoteFetch, m.fallback, m.generation, m.httpTotal)
	return m
}

// RemoteFetch counts one remote catalogue fetch.
func (m *Metrics) RemoteFetch(operation, outcome string) {
	if m == nil {
		return
	}
	m.remoteFetch.WithLabelValues(operation, outcome).Inc()
}

// Fallback counts one response served from the curated corpus.
func (m *Metrics) Fallback(operation string) {
	if m == nil {
		return
	}
	m.fallback.WithLabelValues(operation).Inc()
}

// Generation counts one verse generation attempt.
func (m *Metrics) Generation(outcome string) {
	if m == nil {
		return
	}
	m.generation.WithLabelValues(outcome).Inc()
}

// HTTPRequest counts one finished HTTP request.
func (m *Metrics) HTTPRequest(method string, status int) {
	if m == nil {
		return
	}
	m.httpTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
