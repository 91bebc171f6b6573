package audit

/*
Файл journal.go реализует конвейер audit trail жизненного цикла агентов.

Ключевые особенности архитектуры:
- Non-blocking Logging: события уходят через буферизованный канал, поэтому
  запись в sink не влияет на время ответа вызывающего кода.
- Batching: события копятся в памяти и сбрасываются пачками — по таймеру
  или при достижении лимита пачки.
- Drain Pattern & Graceful Shutdown: при остановке буфер вычитывается
  полностью, финальный flush гарантирует отсутствие потерь.
*/

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Лимит пачки: дальше держать события в памяти нет смысла.
const batchLimit = 100

// Sink определяет, куда физически уходят события.
type Sink interface {
	// WriteBatch сохраняет пачку событий за один вызов.
	WriteBatch(ctx context.Context, events []Event) error
}

// Auditor — интерфейс для тех, кто пишет события (Hot Path).
type Auditor interface {
	Record(event Event)
	// Depth — текущая заполненность буфера, для метрики backpressure.
	Depth() int
}

type Journal struct {
	ch       chan Event
	sink     Sink
	logger   *zap.Logger
	wg       sync.WaitGroup
	interval time.Duration
	isClosed int32 // Атомарный флаг (0 - открыт, 1 - закрыт)
}

func NewJournal(sink Sink, logger *zap.Logger, bufferSize int, flushInterval time.Duration) *Journal {
	if bufferSize <= 0 {
		bufferSize = 1024
	}
	if flushInterval <= 0 {
		flushInterval = time.Second
	}
	return &Journal{
		ch:       make(chan Event, bufferSize),
		sink:     sink,
		logger:   logger.With(zap.String("mod", "journal")),
		interval: flushInterval,
	}
}

func (j *Journal) Start() {
	j.wg.Add(1)
	go j.worker()
}

// Stop «запирает» вход в канал и ждет, пока воркер всё допишет.
// Завершение горутины происходит исключительно через закрытие входного канала.
func (j *Journal) Stop() {
	if !atomic.CompareAndSwapInt32(&j.isClosed, 0, 1) {
		return // уже останавливались
	}

	// Крошечная пауза, чтобы уже начатые Record успели проскочить.
	time.Sleep(10 * time.Millisecond)

	j.logger.Info("stopping journal: closing channel and flushing buffer...")
	close(j.ch)
	j.wg.Wait()
	j.logger.Info("journal stopped gracefully")
}

// Record ставит событие в очередь. Пустые ID и Timestamp дозаполняются здесь,
// чтобы вызывающему коду не приходилось об этом думать.
func (j *Journal) Record(event Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if atomic.LoadInt32(&j.isClosed) == 1 {
		j.logger.Warn("audit event dropped: journal is stopping",
			zap.String("agent", event.Agent),
			zap.String("action", event.Action))
		return
	}

	// Load Shedding: при переполнении буфера событие не блокирует вызывающего,
	// а фиксируется в операционном логе.
	select {
	case j.ch <- event:
	default:
		j.logger.Error("audit_buffer_overflow",
			zap.String("agent", event.Agent),
			zap.String("action", event.Action))
	}
}

func (j *Journal) Depth() int {
	return len(j.ch)
}

func (j *Journal) worker() {
	defer j.wg.Done()

	batch := make([]Event, 0, batchLimit)
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		// Background: основной контекст к моменту финального flush может быть закрыт.
		if err := j.sink.WriteBatch(context.Background(), batch); err != nil {
			j.logger.Error("audit flush failed", zap.Error(err))
		}
		batch = batch[:0]
	}

	for {
		select {
		case event, ok := <-j.ch:
			if !ok {
				// Канал закрыт в Stop(). Воркер к этому моменту уже вычитал
				// остатки очереди, остается финальный flush.
				flush()
				j.logger.Info("journal worker finished")
				return
			}
			batch = append(batch, event)
			if len(batch) >= batchLimit {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}
