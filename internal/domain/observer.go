package domain

// ActionCompleted is the action label sent to observers when a task is completed.
const ActionCompleted = "completed"

// Observer receives task state-change notifications.
// Detach matches observers by identity, so only comparable values such
// as pointers can be detached.
type Observer interface {
	// Notify is called with the action label of the change.
	Notify(action string)
}
