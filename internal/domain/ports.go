package domain

// TaskRepository holds the ordered task sequence of the registry.
// Positions are 0-based and stable: nothing is ever removed or reordered.
type TaskRepository interface {
	// Append adds a task to the end and returns its 0-based index.
	Append(task *Task) (int, error)

	// At returns the task at index. Returns ErrIndexOutOfRange if the
	// index is outside the sequence.
	At(index int) (*Task, error)

	// List returns all tasks in insertion order.
	List() ([]*Task, error)

	// Len returns the number of tasks.
	Len() int
}

// Logger records application events.
// position is the 1-based task position, or 0 for global events.
type Logger interface {
	Debug(position int, category, msg string)
	Info(position int, category, msg string)
	Warn(position int, category, msg string)
	Error(position int, category, msg string)
}

// NopLogger discards all log entries.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(int, string, string) {}

// Info implements Logger.
func (NopLogger) Info(int, string, string) {}

// Warn implements Logger.
func (NopLogger) Warn(int, string, string) {}

// Error implements Logger.
func (NopLogger) Error(int, string, string) {}

// ConfigLoader loads application configuration.
type ConfigLoader interface {
	// Load returns the configuration merged over defaults.
	Load() (*Config, error)
}
