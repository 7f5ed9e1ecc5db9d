package repository

import "context"

// Repository defines the interface for task persistence. The whole
// collection is loaded and stored in one operation; there is no
// per-record addressing at this layer.
type Repository interface {
	// LoadTasks returns every persisted task record in stored order.
	// An absent or empty backing store yields an empty slice, not an error.
	LoadTasks(ctx context.Context) ([]*TaskRecord, error)

	// SaveTasks replaces the persisted collection with the given records.
	SaveTasks(ctx context.Context, records []*TaskRecord) error

	// Close releases any resources held by the backend.
	Close() error
}
