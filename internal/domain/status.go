package domain

// Status is the display state of a task, derived from its completion flag.
type Status string

const (
	StatusPending   Status = "pending"   // Created, not yet completed
	StatusCompleted Status = "completed" // Marked complete
)

// StatusOf returns the status matching the completion flag.
func StatusOf(completed bool) Status {
	if completed {
		return StatusCompleted
	}
	return StatusPending
}

// IsTerminal returns true if the status is a terminal state.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}
