// Package metrics exposes orchestration telemetry to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters updated by the processing pipeline.
var (
	// AgentRuns counts finished agent runs by type and outcome.
	AgentRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "conductor_agent_runs_total",
		Help: "Finished agent runs by run type and outcome.",
	}, []string{"run_type", "outcome"})

	// AgentTokens counts LLM tokens consumed by direction.
	AgentTokens = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "conductor_agent_tokens_total",
		Help: "LLM tokens consumed by agent runs.",
	}, []string{"direction"})

	// AgentCost accumulates the reported cost of agent runs.
	AgentCost = promauto.NewCounter(prometheus.CounterOpts{
		Name: "conductor_agent_cost_dollars_total",
		Help: "Cumulative reported cost of agent runs.",
	})

	// TaskTransitions counts state-machine edges taken.
	TaskTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "conductor_task_transitions_total",
		Help: "Task state transitions by target status.",
	}, []string{"to"})

	// TaskDuration observes wall-clock seconds from first decompose to
	// a terminal status.
	TaskDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "conductor_task_duration_seconds",
		Help:    "Task wall-clock duration to done or failed.",
		Buckets: prometheus.ExponentialBuckets(60, 2, 10),
	})

	// WebhookEvents counts accepted webhook deliveries by event name.
	WebhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "conductor_webhook_events_total",
		Help: "Webhook deliveries by event name.",
	}, []string{"event"})
)

// RecordAgentRun updates the run counters after a run settles.
func RecordAgentRun(runType, outcome string, inputTokens, outputTokens int64, cost float64) {
	AgentRuns.WithLabelValues(runType, outcome).Inc()
	AgentTokens.WithLabelValues("input").Add(float64(inputTokens))
	AgentTokens.WithLabelValues("output").Add(float64(outputTokens))
	AgentCost.Add(cost)
}
