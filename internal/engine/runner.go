package engine

import (
	"fmt"
	"io"

	"github.com/devklg/complete-agentic-project-1/internal/audit"
	"github.com/devklg/complete-agentic-project-1/internal/domain"
	"github.com/devklg/complete-agentic-project-1/internal/registry"
	"go.uber.org/zap"
)

// Runner — явная точка входа жизненного цикла вместо побочного эффекта при
// загрузке модуля: construct -> Initialize -> печать readiness-строки.
// Он же — инструментированный фасад трех методов агента для внешнего
// Command Center: никакой оркестрации сверх этого здесь нет.
type Runner struct {
	reg     *registry.Registry
	auditor audit.Auditor
	metrics *Metrics

	// Возвращаемая readiness-строка печатается сюда — тот же writer,
	// в который агенты пишут свои emoji-нотификации.
	out io.Writer

	logger *zap.Logger
}

func NewRunner(reg *registry.Registry, auditor audit.Auditor, metrics *Metrics, out io.Writer, logger *zap.Logger) *Runner {
	return &Runner{
		reg:     reg,
		auditor: auditor,
		metrics: metrics,
		out:     out,
		logger:  logger.Named("runner"),
	}
}

// Run поднимает перечисленных агентов; без аргументов — весь ростер в
// порядке регистрации. Неизвестное имя — единственная ошибка, которую
// добавляет этот слой: сами агенты отказывать не умеют.
func (r *Runner) Run(names ...string) error {
	if len(names) == 0 {
		names = r.reg.Names()
	}

	for _, name := range names {
		agent, err := r.reg.Get(name)
		if err != nil {
			return err
		}

		ready := agent.Initialize()
		fmt.Fprintln(r.out, ready)

		r.metrics.Initializations.WithLabelValues(agent.Name).Inc()
		r.record(audit.Event{
			AgentID: agent.ID,
			Agent:   agent.Name,
			Action:  audit.ActionInitialize,
			Result:  ready,
			Status:  string(domain.StatusActive),
		})

		r.logger.Info("agent initialized",
			zap.String("agent", agent.Name),
			zap.String("description", agent.Description))
	}

	return nil
}

// ExecuteTask проксирует echo-задачу агенту, снимая метрику и audit-событие.
// Текст задачи не валидируется — контракт агента тотальный.
func (r *Runner) ExecuteTask(name, task string) (string, error) {
	agent, err := r.reg.Get(name)
	if err != nil {
		return "", err
	}

	result := agent.ExecuteTask(task)

	r.metrics.TasksExecuted.WithLabelValues(agent.Name).Inc()
	r.record(audit.Event{
		AgentID: agent.ID,
		Agent:   agent.Name,
		Action:  audit.ActionExecuteTask,
		Task:    task,
		Result:  result,
		Status:  string(agent.ReportStatus().Status),
	})

	return result, nil
}

// ReportStatus отдает снимок состояния агента. Сам вызов побочных эффектов
// на агенте не имеет, инструментируется только фасад.
func (r *Runner) ReportStatus(name string) (domain.StatusReport, error) {
	agent, err := r.reg.Get(name)
	if err != nil {
		return domain.StatusReport{}, err
	}

	report := agent.ReportStatus()
	r.metrics.StatusReports.Inc()
	return report, nil
}

func (r *Runner) record(event audit.Event) {
	r.auditor.Record(event)
	r.metrics.AuditBufferFill.Set(float64(r.auditor.Depth()))
}
