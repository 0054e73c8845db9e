package health

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

const defaultCheckTimeout = 2 * time.Second

type CheckResult struct {
	Status  Status        `json:"status"`
	Message string        `json:"message,omitempty"`
	Latency time.Duration `json:"latency"`
	Error   string        `json:"error,omitempty"`
	// Value and Unit carry an optional measurement, such as a definition count.
	Value any    `json:"value,omitempty"`
	Unit  string `json:"unit,omitempty"`
	// Component is filled by the Manager from the checker.
	Component string `json:"component,omitempty"`
}

type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

// Typed is implemented by checkers that report a component type other than
// "dependency".
type Typed interface {
	ComponentType() string
}

func ComponentType(checker Checker) string {
	if typed, ok := checker.(Typed); ok {
		return typed.ComponentType()
	}
	return "dependency"
}

type ManagerInterface interface {
	Register(checker Checker)
	CheckAll(ctx context.Context) map[string]CheckResult
	IsHealthy(ctx context.Context) bool
}

type Manager struct {
	checkers []Checker
	timeout  time.Duration
	mu       sync.RWMutex
}

// Compile-time interface check
var _ ManagerInterface = (*Manager)(nil)

type Option func(*Manager)

// WithCheckTimeout bounds every individual check.
func WithCheckTimeout(timeout time.Duration) Option {
	return func(m *Manager) {
		if timeout > 0 {
			m.timeout = timeout
		}
	}
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		checkers: make([]Checker, 0),
		timeout:  defaultCheckTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Register adds a checker. A later checker with the same name replaces the
// earlier one.
func (m *Manager) Register(checker Checker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.checkers {
		if existing.Name() == checker.Name() {
			m.checkers[i] = checker
			return
		}
	}
	m.checkers = append(m.checkers, checker)
}

// CheckAll runs every checker concurrently.
func (m *Manager) CheckAll(ctx context.Context) map[string]CheckResult {
	m.mu.RLock()
	checkers := make([]Checker, len(m.checkers))
	copy(checkers, m.checkers)
	m.mu.RUnlock()

	results := make(map[string]CheckResult, len(checkers))
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for _, checker := range checkers {
		wg.Add(1)
		go func(checker Checker) {
			defer wg.Done()
			result := m.run(ctx, checker)

			mu.Lock()
			results[checker.Name()] = result
			mu.Unlock()
		}(checker)
	}
	wg.Wait()

	return results
}

func (m *Manager) run(ctx context.Context, checker Checker) (result CheckResult) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			result = CheckResult{
				Status:  StatusUnhealthy,
				Message: "health check panicked",
				Error:   fmt.Sprint(rec),
			}
		}
		result.Latency = time.Since(start)
		result.Component = ComponentType(checker)
	}()

	return checker.Check(ctx)
}

// IsHealthy reports false only when a checker is unhealthy. Degraded
// components still serve traffic.
func (m *Manager) IsHealthy(ctx context.Context) bool {
	for _, result := range m.CheckAll(ctx) {
		if result.Status == StatusUnhealthy {
			return false
		}
	}
	return true
}
