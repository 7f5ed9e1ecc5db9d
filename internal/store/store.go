// Package store owns the in-memory task collection and every bulk
// operation over it: load, save, add, filter, sort, delete, toggle.
package store

import (
	"context"
	"sort"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/repository"
)

// Store is the sole owner of the ordered task collection. Order is
// insertion order unless explicitly sorted; tasks are addressed by their
// 0-based position in the backing collection.
type Store struct {
	repo   repository.Repository
	mapper *domain.Mapper
	tasks  []domain.Task
}

// New creates a Store backed by the given repository. The collection
// starts empty; call Load to populate it from persisted state.
func New(repo repository.Repository) *Store {
	return &Store{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// Load replaces the collection with the persisted records. An absent or
// empty backing store leaves the collection empty. On failure the
// collection is reset to empty and a storage error is returned; the
// condition is recoverable and the session continues.
func (s *Store) Load(ctx context.Context) error {
	records, err := s.repo.LoadTasks(ctx)
	if err != nil {
		s.tasks = nil
		return err
	}
	s.tasks = s.mapper.Task.FromRecordSlice(records)
	return nil
}

// Save persists the whole collection via the repository. The in-memory
// state is untouched either way; a failure is reported, not retried.
func (s *Store) Save(ctx context.Context) error {
	return s.repo.SaveTasks(ctx, s.mapper.Task.ToRecordSlice(s.tasks))
}

// Add constructs a new task and appends it to the end of the collection.
// Names are not unique; adding always succeeds.
func (s *Store) Add(name string, priority domain.Priority) domain.Task {
	task := domain.NewTask(name, priority)
	s.tasks = append(s.tasks, task)
	return task
}

// Tasks returns a copy of the current collection.
func (s *Store) Tasks() []domain.Task {
	tasks := make([]domain.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// Len returns the number of tasks in the collection.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Filter returns the subset of the collection selected by the criterion.
// The result is a new slice; the backing collection is not modified.
func (s *Store) Filter(criterion domain.FilterCriterion) []domain.Task {
	if criterion == domain.FilterAll {
		return s.Tasks()
	}
	var matched []domain.Task
	for _, task := range s.tasks {
		if criterion.Matches(task) {
			matched = append(matched, task)
		}
	}
	return matched
}

// Sort orders the collection in place by the given key. The sort is
// stable, so equal keys keep their relative order.
func (s *Store) Sort(key domain.SortKey, reverse bool) {
	less := key.Less()
	sort.SliceStable(s.tasks, func(i, j int) bool {
		if reverse {
			return less(s.tasks[j], s.tasks[i])
		}
		return less(s.tasks[i], s.tasks[j])
	})
}

// Delete removes the task at the given 0-based index and returns it.
// An out-of-range index returns an error with no mutation.
func (s *Store) Delete(index int) (domain.Task, error) {
	if index < 0 || index >= len(s.tasks) {
		return domain.Task{}, errors.NewOutOfRangeError(index, len(s.tasks))
	}
	removed := s.tasks[index]
	s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)
	return removed, nil
}

// Toggle flips the completion flag of the task at the given 0-based index
// and returns the updated task. An out-of-range index returns an error
// with no mutation.
func (s *Store) Toggle(index int) (domain.Task, error) {
	if index < 0 || index >= len(s.tasks) {
		return domain.Task{}, errors.NewOutOfRangeError(index, len(s.tasks))
	}
	s.tasks[index].ToggleComplete()
	return s.tasks[index], nil
}
