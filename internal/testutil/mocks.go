// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"

	"github.com/runoshun/taskmenu/internal/domain"
)

// Ensure mocks implement their ports.
var (
	_ domain.TaskRepository = (*MockTaskRepository)(nil)
	_ domain.Logger         = (*MockLogger)(nil)
	_ domain.Observer       = (*RecordingObserver)(nil)
	_ domain.ConfigLoader   = (*MockConfigLoader)(nil)
)

// MockTaskRepository is a test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	AppendErr error
	ListErr   error
	Tasks     []*domain.Task
}

// NewMockTaskRepository creates a new empty MockTaskRepository.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{}
}

// Append adds a task unless AppendErr is set.
func (m *MockTaskRepository) Append(task *domain.Task) (int, error) {
	if m.AppendErr != nil {
		return 0, m.AppendErr
	}
	m.Tasks = append(m.Tasks, task)
	return len(m.Tasks) - 1, nil
}

// At returns the task at index.
func (m *MockTaskRepository) At(index int) (*domain.Task, error) {
	if index < 0 || index >= len(m.Tasks) {
		return nil, fmt.Errorf("%w: %d", domain.ErrIndexOutOfRange, index)
	}
	return m.Tasks[index], nil
}

// List returns all tasks unless ListErr is set.
func (m *MockTaskRepository) List() ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return append([]*domain.Task(nil), m.Tasks...), nil
}

// Len returns the number of tasks.
func (m *MockTaskRepository) Len() int {
	return len(m.Tasks)
}

// LogEntry is one call recorded by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
	Position int
}

// MockLogger records log calls.
type MockLogger struct {
	Entries []LogEntry
}

func (m *MockLogger) record(level string, position int, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, Position: position, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(position int, category, msg string) {
	m.record("debug", position, category, msg)
}

// Info records an info entry.
func (m *MockLogger) Info(position int, category, msg string) {
	m.record("info", position, category, msg)
}

// Warn records a warn entry.
func (m *MockLogger) Warn(position int, category, msg string) {
	m.record("warn", position, category, msg)
}

// Error records an error entry.
func (m *MockLogger) Error(position int, category, msg string) {
	m.record("error", position, category, msg)
}

// RecordingObserver collects the actions it is notified with.
type RecordingObserver struct {
	Actions []string
}

// Notify records the action.
func (r *RecordingObserver) Notify(action string) {
	r.Actions = append(r.Actions, action)
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// Load returns Config, a default config when Config is nil, or Err.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}
