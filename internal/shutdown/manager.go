package shutdown

import (
	"context"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"stock-manager/internal/logger"
)

const defaultStepTimeout = 10 * time.Second

type component struct {
	name   string
	closer io.Closer
}

// Manager closes registered resources once, newest first.
type Manager struct {
	components  []component
	logger      logger.Logger
	stepTimeout time.Duration
	mu          sync.Mutex
	done        chan struct{}
}

func NewManager(log logger.Logger, stepTimeout time.Duration) *Manager {
	if stepTimeout <= 0 {
		stepTimeout = defaultStepTimeout
	}

	return &Manager{
		components:  make([]component, 0),
		logger:      log,
		stepTimeout: stepTimeout,
		done:        make(chan struct{}),
	}
}

func (m *Manager) Register(name string, closer io.Closer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component{name: name, closer: closer})
}

// Listen calls onSignal from its own goroutine when SIGINT or SIGTERM
// arrives. It stops listening when ctx is cancelled.
func (m *Manager) Listen(ctx context.Context, onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			onSignal()
		case <-ctx.Done():
		}
	}()
}

// Shutdown closes every registered component in reverse registration order.
// Only the first call has any effect. A component that does not close within
// the step timeout is abandoned and the sequence moves on.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	for i := len(m.components) - 1; i >= 0; i-- {
		c := m.components[i]

		result := make(chan error, 1)
		go func() {
			result <- c.closer.Close()
		}()

		select {
		case err := <-result:
			if err != nil {
				m.logger.Error("ShutdownManager", err, map[string]interface{}{
					"component": c.name,
				})
			}
		case <-time.After(m.stepTimeout):
			m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component": c.name,
			})
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
