package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"property-tax-tracker/internal/logger"
)

const component = "ShutdownManager"

// DefaultTimeout bounds how long a single component may take to shut down.
const DefaultTimeout = 10 * time.Second

type Shutdownable interface {
	Shutdown()
}

// Func adapts a close function to Shutdownable. Errors are logged by the manager.
func Func(name string, fn func() error) Shutdownable {
	return &funcComponent{name: name, fn: fn}
}

type funcComponent struct {
	name string
	fn   func() error
	err  error
}

func (f *funcComponent) Shutdown() {
	f.err = f.fn()
}

type Manager struct {
	components []Shutdownable
	logger     logger.Logger
	timeout    time.Duration
	mu         sync.Mutex
	done       chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
	stopSignal func()
}

func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		components: make([]Shutdownable, 0),
		logger:     log,
		timeout:    DefaultTimeout,
		done:       make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// SetTimeout changes the per-component shutdown timeout.
func (m *Manager) SetTimeout(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeout = d
}

func (m *Manager) Register(component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component)
}

// Listen shuts down on SIGINT or SIGTERM, calling onSignal first if it is non-nil.
func (m *Manager) Listen(onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	m.mu.Lock()
	m.stopSignal = func() { signal.Stop(sigChan) }
	m.mu.Unlock()

	go func() {
		select {
		case sig := <-sigChan:
			m.logger.Info(component, "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			if onSignal != nil {
				onSignal()
			}
			m.Shutdown()
		case <-m.done:
		}
	}()
}

// Shutdown stops components in reverse registration order. Only the first call has an effect.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return // Already shutting down
	default:
		close(m.done)
	}

	if m.stopSignal != nil {
		m.stopSignal()
	}

	m.logger.Info(component, "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	m.cancel()

	// Shutdown components in reverse order
	for i := len(m.components) - 1; i >= 0; i-- {
		c := m.components[i]

		done := make(chan struct{})
		go func() {
			defer close(done)
			c.Shutdown()
		}()

		select {
		case <-done:
			if f, ok := c.(*funcComponent); ok && f.err != nil {
				m.logger.Error(component, f.err, map[string]interface{}{"component": f.name})
			}
		case <-time.After(m.timeout):
			m.logger.Warning(component, "component shutdown timeout", map[string]interface{}{
				"component_index": i,
			})
		}
	}

	m.logger.Info(component, "shutdown sequence completed", nil)
}

// Context is cancelled when shutdown begins.
func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
