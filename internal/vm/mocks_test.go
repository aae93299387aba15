package vm

import (
	"context"
	"sync"

	"github.com/jbweber/vms/internal/vmrun"
)

// manageCall records one Manage invocation.
type manageCall struct {
	path   string
	action vmrun.Action
}

// mockRuntime is a mock implementation of the Runtime interface for testing.
type mockRuntime struct {
	mu sync.Mutex

	// Configurable behavior
	listRunningFunc func(ctx context.Context) ([]string, error)
	manageFunc      func(ctx context.Context, path string, action vmrun.Action) error

	// Call tracking
	listRunningCalls int
	manageCalls      []manageCall
}

// newMockRuntime creates a mock runtime reporting the given paths as running.
func newMockRuntime(running ...string) *mockRuntime {
	m := &mockRuntime{}

	// Default: return the configured running set
	m.listRunningFunc = func(ctx context.Context) ([]string, error) {
		return running, nil
	}

	// Default: every action succeeds
	m.manageFunc = func(ctx context.Context, path string, action vmrun.Action) error {
		return nil
	}

	return m
}

func (m *mockRuntime) ListRunning(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	m.listRunningCalls++
	m.mu.Unlock()
	return m.listRunningFunc(ctx)
}

func (m *mockRuntime) Manage(ctx context.Context, path string, action vmrun.Action) error {
	m.mu.Lock()
	m.manageCalls = append(m.manageCalls, manageCall{path: path, action: action})
	m.mu.Unlock()
	return m.manageFunc(ctx, path, action)
}
