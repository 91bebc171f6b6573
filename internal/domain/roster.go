package domain

// Spec — декларативное описание агента в ростере: имя плюс назначение.
// Из таких записей реестр собирает живые экземпляры Agent.
type Spec struct {
	Name        string `mapstructure:"name" json:"name"`
	Description string `mapstructure:"description" json:"description"`
}

// DefaultRoster возвращает встроенный флот Command Center.
// Таблица литералов — единственный источник правды о составе;
// конфиг может подменить ее целиком, но не дополняет.
func DefaultRoster() []Spec {
	return []Spec{
		{Name: "elena-backend-api", Description: "Backend API - Talk Fusion integration"},
		{Name: "david-database", Description: "Database Architect - MongoDB PowerLine schemas"},
		{Name: "kelly-enrollment", Description: "Enrollment Flow - Pre-enrollment system"},
		{Name: "maya-viral", Description: "Viral Features - PowerLine sharing"},
		{Name: "grace-ai-integration", Description: "AI Integration - MEM0 v2.0 system"},
		{Name: "iris-devops", Description: "DevOps - Deployment pipeline"},
		{Name: "olivia-docs", Description: "Documentation - PowerLine guides"},
		{Name: "jack-powerline-viz", Description: "PowerLine Visualization - Tree displays"},
	}
}
