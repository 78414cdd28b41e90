// Package memstore provides an in-memory implementation of TaskRepository.
// Task state lives for the lifetime of the process and is never written out.
package memstore

import (
	"errors"
	"fmt"
	"sync"

	"github.com/runoshun/taskmenu/internal/domain"
)

// Ensure Store implements domain.TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)

// Store keeps tasks in insertion order. It is safe for concurrent use.
type Store struct {
	tasks []*domain.Task
	mu    sync.Mutex
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// Append adds a task to the end of the sequence.
func (s *Store) Append(task *domain.Task) (int, error) {
	if task == nil {
		return 0, errors.New("append task: nil task")
	}
	var index int
	s.withLock(func(tasks *[]*domain.Task) {
		*tasks = append(*tasks, task)
		index = len(*tasks) - 1
	})
	return index, nil
}

// At returns the task at the 0-based index.
func (s *Store) At(index int) (*domain.Task, error) {
	var task *domain.Task
	var err error
	s.withLock(func(tasks *[]*domain.Task) {
		if index < 0 || index >= len(*tasks) {
			err = fmt.Errorf("%w: %d (have %d)", domain.ErrIndexOutOfRange, index, len(*tasks))
			return
		}
		task = (*tasks)[index]
	})
	return task, err
}

// List returns a snapshot of all tasks in insertion order.
func (s *Store) List() ([]*domain.Task, error) {
	var out []*domain.Task
	s.withLock(func(tasks *[]*domain.Task) {
		out = make([]*domain.Task, len(*tasks))
		copy(out, *tasks)
	})
	return out, nil
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	var n int
	s.withLock(func(tasks *[]*domain.Task) {
		n = len(*tasks)
	})
	return n
}

// withLock executes fn while holding the store lock.
func (s *Store) withLock(fn func(*[]*domain.Task)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.tasks)
}
