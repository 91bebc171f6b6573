package registry

import (
	"errors"
	"fmt"

	"github.com/devklg/complete-agentic-project-1/internal/domain"
	"go.uber.org/zap"
)

// ErrAgentNotFound возвращается при запросе имени, которого нет в ростере.
// Это ошибка реестра, а не агента: сами агенты отказывать не умеют.
var ErrAgentNotFound = errors.New("agent not found")

// Registry — in-memory хранилище живых агентов, ключ — имя.
// Агенты конструируются один раз при сборке реестра и живут до конца процесса.
type Registry struct {
	agents map[string]*domain.Agent
	order  []string // порядок регистрации, он же порядок ростера
	logger *zap.Logger
}

// New собирает реестр из ростера. Дубликат имени не фатален:
// побеждает первая запись, остальные отбрасываются с warn-логом.
func New(specs []domain.Spec, logger *zap.Logger, opts ...domain.Option) *Registry {
	r := &Registry{
		agents: make(map[string]*domain.Agent, len(specs)),
		order:  make([]string, 0, len(specs)),
		logger: logger.Named("registry"),
	}

	for _, spec := range specs {
		if _, dup := r.agents[spec.Name]; dup {
			r.logger.Warn("duplicate agent name in roster, keeping first",
				zap.String("name", spec.Name))
			continue
		}
		r.agents[spec.Name] = domain.New(spec.Name, spec.Description, opts...)
		r.order = append(r.order, spec.Name)
	}

	r.logger.Debug("registry assembled", zap.Int("agents", len(r.order)))
	return r
}

func (r *Registry) Get(name string) (*domain.Agent, error) {
	agent, ok := r.agents[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAgentNotFound, name)
	}
	return agent, nil
}

// List возвращает агентов в порядке регистрации.
// Гарантируем пустой срез, а не nil, если ростер пуст.
func (r *Registry) List() []*domain.Agent {
	out := make([]*domain.Agent, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.agents[name])
	}
	return out
}

// Names отдает копию порядка регистрации.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
