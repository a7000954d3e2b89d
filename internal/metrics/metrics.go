package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus collectors of adpilot. A nil *Metrics is
// valid and records nothing, which keeps wiring optional in tests.
type Metrics struct {
	IntentsTotal        *prometheus.CounterVec
	DialogueStagesTotal *prometheus.CounterVec
	PipelineStepsTotal  *prometheus.CounterVec
	QueueItemsTotal     *prometheus.CounterVec
	ControlActionsTotal *prometheus.CounterVec
	APIRequestsTotal    *prometheus.CounterVec
	APIRequestDuration  *prometheus.HistogramVec
	PublishRunsActive   prometheus.Gauge

	registry *prometheus.Registry
}

// New creates a Metrics instance with its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		IntentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adpilot_intents_total",
				Help: "Classified commands by intent type",
			},
			[]string{"type"},
		),
		DialogueStagesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adpilot_dialogue_stage_transitions_total",
				Help: "Dialogue transitions by target stage",
			},
			[]string{"stage"},
		),
		PipelineStepsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adpilot_pipeline_steps_total",
				Help: "Creation pipeline steps by step and result",
			},
			[]string{"step", "result"},
		),
		QueueItemsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adpilot_queue_items_total",
				Help: "Processed publish queue items by type and status",
			},
			[]string{"type", "status"},
		),
		ControlActionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adpilot_control_actions_total",
				Help: "Run-state toggles by action and result",
			},
			[]string{"action", "result"},
		),
		APIRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adpilot_api_requests_total",
				Help: "HTTP API requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		APIRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "adpilot_api_request_duration_seconds",
				Help:    "HTTP API request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		PublishRunsActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "adpilot_publish_runs_active",
				Help: "Publish runs currently in progress",
			},
		),

		registry: reg,
	}

	reg.MustRegister(
		m.IntentsTotal,
		m.DialogueStagesTotal,
		m.PipelineStepsTotal,
		m.QueueItemsTotal,
		m.ControlActionsTotal,
		m.APIRequestsTotal,
		m.APIRequestDuration,
		m.PublishRunsActive,
	)

	return m
}

// Registry returns the Prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// IncIntent counts a classified intent.
func (m *Metrics) IncIntent(intentType string) {
	if m != nil {
		m.IntentsTotal.WithLabelValues(intentType).Inc()
	}
}

// IncStage counts a dialogue transition into stage.
func (m *Metrics) IncStage(stage string) {
	if m != nil {
		m.DialogueStagesTotal.WithLabelValues(stage).Inc()
	}
}

// IncPipelineStep counts one creation step outcome.
func (m *Metrics) IncPipelineStep(step string, err error) {
	if m != nil {
		m.PipelineStepsTotal.WithLabelValues(step, result(err)).Inc()
	}
}

// IncQueueItem counts a processed queue item.
func (m *Metrics) IncQueueItem(itemType, status string) {
	if m != nil {
		m.QueueItemsTotal.WithLabelValues(itemType, status).Inc()
	}
}

// IncControlAction counts a toggle attempt.
func (m *Metrics) IncControlAction(action string, err error) {
	if m != nil {
		m.ControlActionsTotal.WithLabelValues(action, result(err)).Inc()
	}
}

// AddActiveRuns moves the active publish run gauge by delta.
func (m *Metrics) AddActiveRuns(delta float64) {
	if m != nil {
		m.PublishRunsActive.Add(delta)
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
