package main

import (
	"log"
	"os"

	"github.com/devklg/complete-agentic-project-1/internal/audit"
	"github.com/devklg/complete-agentic-project-1/internal/domain"
	"github.com/devklg/complete-agentic-project-1/internal/engine"
	"github.com/devklg/complete-agentic-project-1/internal/infra"
	"github.com/devklg/complete-agentic-project-1/internal/registry"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Позиционные аргументы выбирают агентов по имени; без аргументов
	// поднимается весь ростер.
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("powerline: %v", err)
	}
}

func run(names []string) error {
	// 1. Конфигурация и логгер
	cfg, err := infra.LoadConfig()
	if err != nil {
		return err
	}
	logger, err := infra.NewLogger(cfg.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// 2. Audit trail: события копятся в памяти процесса и пишутся пачками
	sink := audit.NewMemorySink()
	journal := audit.NewJournal(sink, logger, cfg.Audit.BufferSize, cfg.Audit.FlushInterval)
	journal.Start()
	defer journal.Stop()

	// 3. Метрики. Реестр локальный: эндпоинта /metrics по контракту нет.
	metrics := engine.NewMetrics(prometheus.NewRegistry())

	// 4. Реестр агентов из активного ростера
	reg := registry.New(cfg.ActiveRoster(), logger, domain.WithOutput(os.Stdout))

	// 5. Явный запуск жизненного цикла (вместо side effect при импорте)
	runner := engine.NewRunner(reg, journal, metrics, os.Stdout, logger)
	return runner.Run(names...)
}
