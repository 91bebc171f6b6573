package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// Traffic: сколько раз агентов поднимали (Initialize идемпотентен,
	// поэтому счетчик может превышать размер флота)
	Initializations *prometheus.CounterVec

	// Traffic: echo-задачи в разрезе агентов
	TasksExecuted *prometheus.CounterVec

	// Сколько раз Command Center спрашивал статус
	StatusReports prometheus.Counter

	// Saturation: заполненность буфера audit trail (backpressure)
	AuditBufferFill prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	// Null Object Pattern — если Registerer не передан, используем локальный,
	// который никуда не подключен
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	return &Metrics{
		Initializations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "powerline_agent_initializations_total",
			Help: "Total number of agent initializations.",
		}, []string{"agent"}),

		TasksExecuted: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "powerline_agent_tasks_executed_total",
			Help: "Total number of tasks echoed by agents.",
		}, []string{"agent"}),

		StatusReports: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "powerline_status_reports_total",
			Help: "Total number of status report requests.",
		}),

		AuditBufferFill: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "powerline_audit_buffer_utilization",
			Help: "Current number of events in the audit journal buffer.",
		}),
	}
}
