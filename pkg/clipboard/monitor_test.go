package clipboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ai-notecapture-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInterval = 5 * time.Millisecond

type collector struct {
	mu   sync.Mutex
	seen []*Data
}

func (c *collector) add(d *Data) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen = append(c.seen, d)
}

func (c *collector) texts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.seen))
	for _, d := range c.seen {
		out = append(out, d.Text)
	}
	return out
}

func newTestMonitor(src *fakeSource) *Monitor {
	nop := logger.NewNopLogger()
	return NewMonitor(NewReader(src, nop), testInterval, nop)
}

func TestMonitorDoesNotPollBeforeInteraction(t *testing.T) {
	src := &fakeSource{}
	src.setText("hello")
	m := newTestMonitor(src)
	defer m.Stop()

	time.Sleep(10 * testInterval)

	src.mu.Lock()
	defer src.mu.Unlock()
	assert.Zero(t, src.textHits)
	assert.False(t, m.Running())
}

func TestMonitorPublishesChanges(t *testing.T) {
	src := &fakeSource{}
	src.setText("first")
	m := newTestMonitor(src)
	defer m.Stop()

	var c collector
	m.Subscribe(c.add)

	require.True(t, m.NotifyInteraction(context.Background()))
	assert.False(t, m.NotifyInteraction(context.Background()), "second gesture must not start another poller")

	require.Eventually(t, func() bool { return len(c.texts()) == 1 }, time.Second, testInterval)

	// unchanged text is not republished
	time.Sleep(10 * testInterval)
	assert.Equal(t, []string{"first"}, c.texts())

	// empty text is ignored
	src.setText("")
	time.Sleep(10 * testInterval)
	assert.Equal(t, []string{"first"}, c.texts())

	src.setText("second")
	require.Eventually(t, func() bool { return len(c.texts()) == 2 }, time.Second, testInterval)
	assert.Equal(t, []string{"first", "second"}, c.texts())
}

func TestMonitorSwallowsPollErrors(t *testing.T) {
	src := &fakeSource{textErr: errors.New("permission denied")}
	m := newTestMonitor(src)
	defer m.Stop()

	var c collector
	m.Subscribe(c.add)
	m.NotifyInteraction(context.Background())

	time.Sleep(10 * testInterval)
	assert.Empty(t, c.texts())
	assert.True(t, m.Running())

	src.mu.Lock()
	src.textErr = nil
	src.mu.Unlock()
	src.setText("recovered")

	require.Eventually(t, func() bool { return len(c.texts()) == 1 }, time.Second, testInterval)
}

func TestMonitorUnsubscribe(t *testing.T) {
	src := &fakeSource{}
	src.setText("a")
	m := newTestMonitor(src)
	defer m.Stop()

	var kept, dropped collector
	m.Subscribe(kept.add)
	unsubscribe := m.Subscribe(dropped.add)
	unsubscribe()

	m.NotifyInteraction(context.Background())
	require.Eventually(t, func() bool { return len(kept.texts()) == 1 }, time.Second, testInterval)
	assert.Empty(t, dropped.texts())
}

func TestMonitorStop(t *testing.T) {
	src := &fakeSource{}
	src.setText("a")
	m := newTestMonitor(src)

	m.Stop() // before start

	m.NotifyInteraction(context.Background())
	require.True(t, m.Running())

	m.Stop()
	m.Stop()
	assert.False(t, m.Running())

	src.mu.Lock()
	hits := src.textHits
	src.mu.Unlock()

	time.Sleep(10 * testInterval)
	src.mu.Lock()
	defer src.mu.Unlock()
	assert.Equal(t, hits, src.textHits, "no polling after Stop")
}

func TestMonitorStopsWithContext(t *testing.T) {
	src := &fakeSource{}
	m := newTestMonitor(src)

	ctx, cancel := context.WithCancel(context.Background())
	m.NotifyInteraction(ctx)
	cancel()

	require.Eventually(t, func() bool { return !m.Running() }, time.Second, testInterval)
}
