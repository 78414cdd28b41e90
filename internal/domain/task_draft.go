package domain

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TaskDraft represents a task to be created from seed file input.
// Due is nil when the entry has no due key; an empty due date is kept.
type TaskDraft struct {
	Due         *string `yaml:"due,omitempty"`
	Kind        Kind    `yaml:"kind"`
	Description string  `yaml:"description"`
}

// Args returns the factory arguments for the draft.
func (d TaskDraft) Args() []string {
	if d.Due == nil {
		return nil
	}
	return []string{*d.Due}
}

type taskDraftFile struct {
	Tasks []TaskDraft `yaml:"tasks"`
}

// ParseTaskDrafts parses a YAML seed document.
//
// Format:
//
//	tasks:
//	  - kind: Simple
//	    description: Buy milk
//	  - kind: Timed
//	    description: File taxes
//	    due: "2025-04-15"
//
// Every draft is checked against the factory rules before any is returned,
// so a document with one bad entry yields no drafts.
func ParseTaskDrafts(content string) ([]TaskDraft, error) {
	var file taskDraftFile
	if err := yaml.Unmarshal([]byte(content), &file); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if len(file.Tasks) == 0 {
		return nil, errors.New("parse seed: no tasks found")
	}

	for i, d := range file.Tasks {
		if _, err := ParseKind(string(d.Kind)); err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		if d.Kind == KindTimed && d.Due == nil {
			return nil, fmt.Errorf("task %d: %w: %q requires a due date", i+1, ErrUnsupportedKind, d.Kind)
		}
	}
	return file.Tasks, nil
}
