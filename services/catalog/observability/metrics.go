// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package observability provides Prometheus metrics for the catalog
// service: request counters by endpoint and status, query latency
// histograms, catalog size, and reload outcomes.
//
// Metrics are exposed via the /metrics endpoint. All operations are
// thread-safe via Prometheus's internal locking.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "impactwatch"

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "requests_total",
		Help:      "Catalog API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Name:      "query_duration_seconds",
		Help:      "Query engine latency by endpoint",
		Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	}, []string{"endpoint"})

	catalogEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "catalog_entries",
		Help:      "Number of records in the last successfully loaded catalog",
	})

	reloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "catalog_reloads_total",
		Help:      "Catalog load attempts by outcome",
	}, []string{"status"})
)

// Request statuses recorded on requestsTotal.
const (
	StatusOK          = "ok"
	StatusBadRequest  = "bad_request"
	StatusUnavailable = "unavailable"
)

// ObserveRequest records one API request outcome.
func ObserveRequest(endpoint, status string) {
	requestsTotal.WithLabelValues(endpoint, status).Inc()
}

// ObserveQueryDuration records engine latency for one request.
func ObserveQueryDuration(endpoint string, d time.Duration) {
	queryDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

// SetCatalogEntries records the size of the serving snapshot.
func SetCatalogEntries(n int) {
	catalogEntries.Set(float64(n))
}

// ObserveReload records a catalog load attempt outcome.
func ObserveReload(err error) {
	if err != nil {
		reloadsTotal.WithLabelValues("error").Inc()
		return
	}
	reloadsTotal.WithLabelValues("success").Inc()
}
