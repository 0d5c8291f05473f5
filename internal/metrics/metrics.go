// Package metrics declares the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LoginAttempts counts login and token requests by flow and outcome.
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tutor_marketplace",
		Name:      "login_attempts_total",
		Help:      "Login attempts by flow (session, token) and outcome.",
	}, []string{"flow", "outcome"})

	// Registrations counts registration requests by account kind and outcome.
	Registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tutor_marketplace",
		Name:      "registrations_total",
		Help:      "Registrations by account kind and outcome.",
	}, []string{"kind", "outcome"})

	// GateDecisions counts Auth Gate results by method and outcome.
	GateDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tutor_marketplace",
		Name:      "auth_gate_decisions_total",
		Help:      "Auth gate decisions by authentication method and outcome.",
	}, []string{"method", "outcome"})

	// RateLimited counts requests rejected by the per-client limiter.
	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tutor_marketplace",
		Name:      "rate_limited_requests_total",
		Help:      "Requests rejected with 429.",
	})
)

// Outcome labels.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)
