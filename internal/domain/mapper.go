package domain

import (
	"todo-list/internal/repository"
)

// TaskMapper handles conversion between domain Tasks and the portable
// records the storage layer persists.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRecord converts a domain Task to its portable record form.
func (m *TaskMapper) ToRecord(task Task) repository.TaskRecord {
	return repository.TaskRecord{
		Name:        task.Name,
		Priority:    string(task.Priority),
		Completed:   task.Completed,
		CreatedDate: task.CreatedDate,
	}
}

// FromRecord converts a portable record to a domain Task. The priority
// label is carried over verbatim; persisted records are not re-validated.
func (m *TaskMapper) FromRecord(record repository.TaskRecord) Task {
	return Task{
		Name:        record.Name,
		Priority:    Priority(record.Priority),
		Completed:   record.Completed,
		CreatedDate: record.CreatedDate,
	}
}

// ToRecordSlice converts a slice of domain Tasks to portable records.
func (m *TaskMapper) ToRecordSlice(tasks []Task) []*repository.TaskRecord {
	records := make([]*repository.TaskRecord, len(tasks))
	for i, task := range tasks {
		record := m.ToRecord(task)
		records[i] = &record
	}
	return records
}

// FromRecordSlice converts a slice of portable records to domain Tasks.
func (m *TaskMapper) FromRecordSlice(records []*repository.TaskRecord) []Task {
	tasks := make([]Task, len(records))
	for i, record := range records {
		tasks[i] = m.FromRecord(*record)
	}
	return tasks
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
	}
}
