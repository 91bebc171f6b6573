package audit

import "time"

// Действия жизненного цикла, попадающие в audit trail.
const (
	ActionInitialize   = "initialize"
	ActionExecuteTask  = "execute_task"
	ActionReportStatus = "report_status"
)

// Event — одна запись audit trail о вызове жизненного цикла агента.
type Event struct {
	ID      string `json:"id"`       // UUID события
	AgentID string `json:"agent_id"` // UUID экземпляра агента
	Agent   string `json:"agent"`    // Имя агента (человекочитаемое)
	Action  string `json:"action"`   // initialize | execute_task | report_status
	Task    string `json:"task,omitempty"`

	// Результат
	Result    string    `json:"result"` // Что вернули вызывающему
	Status    string    `json:"status"` // Статус агента после вызова
	Timestamp time.Time `json:"timestamp"`
}
