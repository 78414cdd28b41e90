package tui

import "github.com/runoshun/taskmenu/internal/usecase"

// MsgTasksLoaded is sent when the task list has been read.
type MsgTasksLoaded struct {
	Err     error
	Entries []usecase.TaskEntry
}

// MsgTaskAdded is sent after an add attempt.
type MsgTaskAdded struct {
	Err     error
	Message string
}

// MsgTaskCompleted is sent after a complete attempt.
type MsgTaskCompleted struct {
	Err     error
	Message string
}
