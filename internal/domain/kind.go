package domain

import (
	"fmt"
	"slices"
)

// Kind distinguishes the task variants.
type Kind string

const (
	KindSimple Kind = "Simple" // Plain task
	KindTimed  Kind = "Timed"  // Task carrying a due date
)

// AllKinds returns all valid kinds.
func AllKinds() []Kind {
	return []Kind{KindSimple, KindTimed}
}

// ParseKind maps a kind name to a Kind. Matching is exact.
func ParseKind(name string) (Kind, error) {
	k := Kind(name)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, name)
	}
	return k, nil
}

// IsValid returns true if the kind is a known variant.
func (k Kind) IsValid() bool {
	return slices.Contains(AllKinds(), k)
}

// Label returns the tag shown in front of a rendered task.
func (k Kind) Label() string {
	switch k {
	case KindSimple:
		return "Simple Task"
	case KindTimed:
		return "Timed Task"
	default:
		return ""
	}
}
