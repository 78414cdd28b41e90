package domain

import "fmt"

// NewTask constructs the task variant for kind.
// KindTimed takes its due date from the first element of args; extra
// args are ignored. An unknown kind, or KindTimed without a due date,
// returns ErrUnsupportedKind.
func NewTask(kind Kind, description string, args ...string) (*Task, error) {
	switch kind {
	case KindSimple:
		return &Task{Kind: KindSimple, Description: description}, nil
	case KindTimed:
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: %q requires a due date", ErrUnsupportedKind, kind)
		}
		return &Task{Kind: KindTimed, Description: description, DueDate: args[0]}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}
}
