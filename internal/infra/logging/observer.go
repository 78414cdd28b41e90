package logging

import (
	"fmt"

	"github.com/runoshun/taskmenu/internal/domain"
)

// Ensure CompletionObserver implements domain.Observer interface.
var _ domain.Observer = (*CompletionObserver)(nil)

// CompletionObserver logs every notification of the task it is attached to.
type CompletionObserver struct {
	logger      domain.Logger
	description string
	position    int
}

// NewCompletionObserver creates an observer for the task at the 1-based position.
func NewCompletionObserver(logger domain.Logger, position int, description string) *CompletionObserver {
	return &CompletionObserver{
		logger:      logger,
		position:    position,
		description: description,
	}
}

// Notify implements domain.Observer.
func (o *CompletionObserver) Notify(action string) {
	o.logger.Info(o.position, "observer", fmt.Sprintf("%s: %q", action, o.description))
}
