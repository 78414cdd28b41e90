// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"reflect"
)

// Task represents one unit of work tracked by the menu.
// Tasks are built by NewTask; Kind never changes afterwards.
// Fields are ordered to minimize memory padding.
type Task struct {
	observers   []Observer // Attached observers, in attachment order
	Description string     // Description (unvalidated)
	DueDate     string     // Due date, opaque text (KindTimed only)
	Kind        Kind       // Variant tag
	Completed   bool       // Set once by Complete
}

// Status returns the display status of the task.
func (t *Task) Status() Status {
	return StatusOf(t.Completed)
}

// Complete marks the task as completed and notifies observers.
// Calling it again keeps the flag set and notifies again.
func (t *Task) Complete() *Task {
	t.Completed = true
	t.notify(ActionCompleted)
	return t
}

// Display renders the task for listing.
func (t *Task) Display() string {
	status := t.Status().Display()
	switch t.Kind {
	case KindSimple:
		return fmt.Sprintf("[%s] [%s] %s", t.Kind.Label(), status, t.Description)
	case KindTimed:
		return fmt.Sprintf("[%s] [%s] (Due: %s) %s", t.Kind.Label(), status, t.DueDate, t.Description)
	default:
		// Only reachable for a Task built outside NewTask.
		return fmt.Sprintf("[%s] %s", status, t.Description)
	}
}

// String implements fmt.Stringer.
func (t *Task) String() string {
	return t.Display()
}

// Attach adds an observer. Attaching the same observer twice
// results in two notifications per event.
func (t *Task) Attach(o Observer) {
	t.observers = append(t.observers, o)
}

// Detach removes the first attachment of o.
// Returns ErrObserverNotFound if o is not attached. Observers whose type
// cannot be compared, such as func adapters, are never matched.
func (t *Task) Detach(o Observer) error {
	if !isComparable(o) {
		return ErrObserverNotFound
	}
	for i, attached := range t.observers {
		if isComparable(attached) && attached == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return nil
		}
	}
	return ErrObserverNotFound
}

// ObserverCount returns the number of attached observers.
func (t *Task) ObserverCount() int {
	return len(t.observers)
}

func isComparable(o Observer) bool {
	return o != nil && reflect.ValueOf(o).Comparable()
}

func (t *Task) notify(action string) {
	for _, o := range t.observers {
		o.Notify(action)
	}
}
