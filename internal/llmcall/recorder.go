package llmcall

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackzampolin/coffeequest/internal/providers"
)

// Recorder handles fire-and-forget LLM call recording. Calls are queued and
// written to the Store by a single background writer so request handlers
// never wait on SQLite.
type Recorder struct {
	store  *Store
	logger *slog.Logger

	queue    chan *Call
	wg       sync.WaitGroup
	stopOnce sync.Once
	mu       sync.RWMutex
	stopped  bool
}

// NewRecorder creates a recorder and starts its writer. A nil store yields a
// recorder that drops everything.
func NewRecorder(store *Store, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Recorder{
		store:  store,
		logger: logger,
		queue:  make(chan *Call, 256),
	}
	if store != nil {
		r.wg.Add(1)
		go r.run()
	}
	return r
}

// Record captures an LLM call asynchronously.
func (r *Recorder) Record(result *providers.ChatResult, opts RecordOptions) {
	r.RecordCall(FromChatResult(result, opts))
}

// RecordCall queues an already-constructed Call. Drops (with a warning) when
// the queue is full or the recorder is stopped.
func (r *Recorder) RecordCall(call *Call) {
	if r == nil || r.store == nil || call == nil {
		return
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.stopped {
		r.logger.Warn("recorder stopped, dropping llm call", "prompt_key", call.PromptKey)
		return
	}

	select {
	case r.queue <- call:
	default:
		r.logger.Warn("recorder queue full, dropping llm call", "prompt_key", call.PromptKey)
	}
}

// Stop flushes queued calls and stops the writer.
func (r *Recorder) Stop() {
	if r == nil {
		return
	}
	r.stopOnce.Do(func() {
		r.mu.Lock()
		r.stopped = true
		close(r.queue)
		r.mu.Unlock()
		r.wg.Wait()
	})
}

func (r *Recorder) run() {
	defer r.wg.Done()
	for call := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := r.store.Save(ctx, call); err != nil {
			r.logger.Warn("failed to record llm call", "id", call.ID, "prompt_key", call.PromptKey, "error", err)
		}
		cancel()
	}
}
