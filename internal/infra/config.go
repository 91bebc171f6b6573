package infra

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devklg/complete-agentic-project-1/internal/domain"
	"github.com/spf13/viper"
)

// Config — корневая структура конфигурации флота.
type Config struct {
	Logger LoggerConfig  `mapstructure:"logger"`
	Audit  AuditConfig   `mapstructure:"audit"`
	Roster []domain.Spec `mapstructure:"roster"`
}

// LoggerConfig настраивает поведение zap логгера.
type LoggerConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// AuditConfig описывает буферизацию журнала audit trail.
type AuditConfig struct {
	BufferSize    int           `mapstructure:"buffer_size"`
	FlushInterval time.Duration `mapstructure:"flush_interval"`
}

// ActiveRoster возвращает ростер из конфига, а при его отсутствии —
// встроенную таблицу. Конфиг подменяет флот целиком, а не дополняет.
func (c *Config) ActiveRoster() []domain.Spec {
	if len(c.Roster) > 0 {
		return c.Roster
	}
	return domain.DefaultRoster()
}

// LoadConfig инициализирует конфигурацию, объединяя значения из файла и ENV.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// 1. Настройка поиска файла
	v.SetConfigName("config")    // имя файла без расширения
	v.SetConfigType("yaml")      // формат
	v.AddConfigPath(".")         // ищем в корне
	v.AddConfigPath("./configs") // и в папке с конфигами

	// 2. Переменные окружения: LOGGER_LEVEL=debug перекроет logger.level
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 3. Дефолты
	setDefaults(v)

	// 4. Чтение файла. Если файла нет — работаем на ENV и дефолтах.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// 5. Маппинг в структуру
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("audit.buffer_size", 1024)
	v.SetDefault("audit.flush_interval", 1*time.Second)
}
