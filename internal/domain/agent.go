package domain

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// AgentStatus — строковый enum состояния агента во флоте.
type AgentStatus string

const (
	StatusInitialized AgentStatus = "initialized" // Сконструирован, но еще не поднят
	StatusActive      AgentStatus = "active"      // Готов к PowerLine-операциям
)

// Agent — именованная единица флота PowerLine.
// Жизненный цикл трехходовой: Initialize -> ExecuteTask* -> ReportStatus*.
// Инварианты:
//   - status монотонен: initialized -> active, обратного перехода нет;
//   - powerline-флаг константен после конструктора;
//   - ни одна операция не умеет отказывать (контракт тотальный).
type Agent struct {
	ID          string // UUID экземпляра, для корреляции в audit trail
	Name        string // Человекочитаемый идентификатор (например, "elena-backend-api")
	Description string // Назначение агента, свободный текст

	status    AgentStatus
	powerline bool

	// Контрактные консольные строки (emoji-нотификации) печатаются сюда.
	// По умолчанию stdout; zap эти строки не трогает.
	out io.Writer
}

// StatusReport — снимок состояния для Command Center.
// Форма фиксирована: ровно три поля.
type StatusReport struct {
	Agent          string      `json:"agent"`
	Status         AgentStatus `json:"status"`
	PowerlineReady bool        `json:"powerline_ready"`
}

type Option func(*Agent)

// WithOutput перенаправляет контрактный консольный вывод (нужно тестам).
func WithOutput(w io.Writer) Option {
	return func(a *Agent) { a.out = w }
}

// New конструирует агента. Валидации нет намеренно: пустое имя тоже
// агент — конструктор всегда успешен.
func New(name, description string, opts ...Option) *Agent {
	a := &Agent{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		status:      StatusInitialized,
		powerline:   true,
		out:         os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Initialize переводит агента в active и возвращает readiness-строку.
// Присваивание безусловное: повторный вызов делает ровно то же самое
// (идемпотентный no-op после первого раза).
func (a *Agent) Initialize() string {
	fmt.Fprintf(a.out, "🤖 %s agent initializing...\n", a.Name)
	a.status = StatusActive
	return fmt.Sprintf("%s ready for PowerLine operations", a.Name)
}

// ExecuteTask — чистое echo: задача не интерпретируется и не исполняется,
// текст принимается любой (включая пустой). Статус не меняется.
func (a *Agent) ExecuteTask(task string) string {
	fmt.Fprintf(a.out, "⚡ %s executing: %s\n", a.Name, task)
	return fmt.Sprintf("Task '%s' completed by %s", task, a.Name)
}

// ReportStatus отдает снимок без побочных эффектов. Можно звать в любой
// точке жизненного цикла, в том числе до Initialize.
func (a *Agent) ReportStatus() StatusReport {
	return StatusReport{
		Agent:          a.Name,
		Status:         a.status,
		PowerlineReady: a.powerline,
	}
}
