package shutdown

import (
	"errors"
	"sync"
	"testing"
	"time"

	"property-tax-tracker/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recorder struct {
	mu    sync.Mutex
	order []string
}

func (r *recorder) add(name string) func() error {
	return func() error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.order = append(r.order, name)
		return nil
	}
}

func TestManager_ShutdownReverseOrder(t *testing.T) {
	m := NewManager(logger.Nop())
	rec := &recorder{}

	m.Register(Func("store", rec.add("store")))
	m.Register(Func("log file", rec.add("log file")))
	m.Register(Func("window", rec.add("window")))

	m.Shutdown()

	assert.Equal(t, []string{"window", "log file", "store"}, rec.order)
}

func TestManager_ShutdownIdempotent(t *testing.T) {
	m := NewManager(logger.Nop())
	calls := 0
	m.Register(Func("store", func() error { calls++; return nil }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, 1, calls)
}

func TestManager_ContextAndDone(t *testing.T) {
	m := NewManager(logger.Nop())

	select {
	case <-m.Done():
		t.Fatal("done before shutdown")
	default:
	}
	require.NoError(t, m.Context().Err())

	m.Shutdown()

	<-m.Done()
	assert.Error(t, m.Context().Err())
}

func TestManager_ErrorDoesNotStopSequence(t *testing.T) {
	m := NewManager(logger.Nop())
	rec := &recorder{}

	m.Register(Func("first", rec.add("first")))
	m.Register(Func("broken", func() error { return errors.New("close failed") }))

	m.Shutdown()
	assert.Equal(t, []string{"first"}, rec.order)
}

func TestManager_SlowComponentTimesOut(t *testing.T) {
	m := NewManager(logger.Nop())
	m.SetTimeout(20 * time.Millisecond)

	release := make(chan struct{})
	rec := &recorder{}
	m.Register(Func("fast", rec.add("fast")))
	m.Register(Func("slow", func() error { <-release; return nil }))

	m.Shutdown()
	close(release)

	assert.Equal(t, []string{"fast"}, rec.order)
}

func TestManager_ListenStopsWithShutdown(t *testing.T) {
	m := NewManager(logger.Nop())
	m.Listen(nil)
	m.Shutdown()
}
