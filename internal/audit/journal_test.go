package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestJournalFlushOnStop(t *testing.T) {
	sink := NewMemorySink()
	journal := NewJournal(sink, zap.NewNop(), 64, time.Minute)
	journal.Start()

	for i := 0; i < 5; i++ {
		journal.Record(Event{Agent: "elena-backend-api", Action: ActionInitialize})
	}

	// Stop must drain the buffer and perform the final flush.
	journal.Stop()

	events := sink.Events()
	require.Len(t, events, 5)
	for _, event := range events {
		assert.NotEmpty(t, event.ID)
		assert.False(t, event.Timestamp.IsZero())
		assert.Equal(t, ActionInitialize, event.Action)
	}
}

func TestJournalBatchBySize(t *testing.T) {
	sink := NewMemorySink()
	// Flush interval far away: only the batch limit can trigger writes.
	journal := NewJournal(sink, zap.NewNop(), 1024, time.Hour)
	journal.Start()

	for i := 0; i < 250; i++ {
		journal.Record(Event{Agent: "david-database", Action: ActionExecuteTask})
	}

	// Two full batches of 100 should land without waiting for the ticker.
	require.Eventually(t, func() bool { return sink.Len() >= 200 }, 2*time.Second, 10*time.Millisecond)

	journal.Stop()
	assert.Equal(t, 250, sink.Len())
}

func TestJournalFlushByTicker(t *testing.T) {
	sink := NewMemorySink()
	journal := NewJournal(sink, zap.NewNop(), 64, 20*time.Millisecond)
	journal.Start()
	defer journal.Stop()

	journal.Record(Event{Agent: "maya-viral", Action: ActionReportStatus})

	require.Eventually(t, func() bool { return sink.Len() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestJournalDropsAfterStop(t *testing.T) {
	sink := NewMemorySink()
	journal := NewJournal(sink, zap.NewNop(), 64, time.Minute)
	journal.Start()
	journal.Stop()

	// Must not panic and must not reach the sink.
	journal.Record(Event{Agent: "iris-devops", Action: ActionInitialize})
	assert.Equal(t, 0, sink.Len())

	// Double Stop is a no-op.
	journal.Stop()
}

func TestJournalLoadShedding(t *testing.T) {
	sink := NewMemorySink()
	// Worker is intentionally not started: the buffer of one fills up
	// immediately and further Record calls must not block.
	journal := NewJournal(sink, zap.NewNop(), 1, time.Minute)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			journal.Record(Event{Agent: "olivia-docs", Action: ActionExecuteTask})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Record blocked on a full buffer")
	}

	journal.Start()
	journal.Stop()
	assert.Equal(t, 1, sink.Len())
}
