package clipboard

import (
	"context"
	"sync"
	"time"

	"ai-notecapture-be/internal/pkg/logger"
)

const (
	monitorModule = "ClipboardMonitor"

	DefaultPollInterval = time.Second
)

// Monitor polls the clipboard text and publishes a full Read to subscribers
// whenever it changes. Polling starts on the first NotifyInteraction.
type Monitor struct {
	reader   *Reader
	interval time.Duration
	logger   logger.ILogger

	mu          sync.Mutex
	subscribers map[int]func(*Data)
	nextID      int
	started     bool
	cancel      context.CancelFunc
	done        chan struct{}

	// owned by the polling goroutine
	lastText string
}

func NewMonitor(reader *Reader, interval time.Duration, logger logger.ILogger) *Monitor {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Monitor{
		reader:      reader,
		interval:    interval,
		logger:      logger,
		subscribers: make(map[int]func(*Data)),
	}
}

// Subscribe registers fn for every published change and returns a function
// that removes it.
func (m *Monitor) Subscribe(fn func(*Data)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.subscribers[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subscribers, id)
	}
}

// NotifyInteraction records a user gesture. The first call starts polling until
// ctx is cancelled or Stop is called; later calls do nothing. It reports whether
// this call started the poller.
func (m *Monitor) NotifyInteraction(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return false
	}
	m.started = true

	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})
	go m.run(ctx, m.done)

	m.logger.Info(monitorModule, "Clipboard monitoring started", map[string]interface{}{
		"interval": m.interval.String(),
	})
	return true
}

// Running reports whether the poller has been started and not yet stopped.
func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.started || m.done == nil {
		return false
	}
	select {
	case <-m.done:
		return false
	default:
		return true
	}
}

// Stop cancels the poller and waits for it to exit. Safe to call more than once
// or before polling started.
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel, done := m.cancel, m.done
	m.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (m *Monitor) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info(monitorModule, "Clipboard monitoring stopped", nil)
			return
		case <-ticker.C:
			m.poll(ctx)
		}
	}
}

func (m *Monitor) poll(ctx context.Context) {
	// errors here are expected while permission is missing and stay out of the user's way
	text, err := m.reader.source.ReadText(ctx)
	if err != nil {
		m.logger.Debug(monitorModule, "Clipboard poll failed", map[string]interface{}{"error": err.Error()})
		return
	}
	if text == "" || text == m.lastText {
		return
	}
	m.lastText = text

	data, err := m.reader.Read(ctx)
	if err != nil {
		m.logger.Debug(monitorModule, "Clipboard read after change failed", map[string]interface{}{"error": err.Error()})
		return
	}
	m.publish(data)
}

func (m *Monitor) publish(data *Data) {
	m.mu.Lock()
	fns := make([]func(*Data), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(data)
	}
}
