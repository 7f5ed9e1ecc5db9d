// Package sqlite persists the task collection in a SQLite database. The
// contract matches the JSON file backend: saves replace the whole stored
// collection, loads return it in stored order.
package sqlite

import (
	"database/sql"

	"context"

	"todo-list/internal/errors"
	"todo-list/internal/repository"
	"todo-list/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SQLiteRepository implements the repository.Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// LoadTasks retrieves every stored task record in list order
func (r *SQLiteRepository) LoadTasks(ctx context.Context) ([]*repository.TaskRecord, error) {
	query := `
	SELECT name, priority, completed, created_date
	FROM tasks
	ORDER BY position ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.NewStorageError("query tasks", err)
	}
	defer rows.Close()

	var records []*repository.TaskRecord
	for rows.Next() {
		var record repository.TaskRecord
		var completed int
		if err := rows.Scan(&record.Name, &record.Priority, &completed, &record.CreatedDate); err != nil {
			return nil, errors.NewStorageError("scan task", err)
		}
		record.Completed = completed != 0
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStorageError("iterate tasks", err)
	}

	return records, nil
}

// SaveTasks replaces the stored collection with the given records inside a
// single transaction, keeping list order in the position column
func (r *SQLiteRepository) SaveTasks(ctx context.Context, records []*repository.TaskRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewStorageError("begin transaction", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		tx.Rollback()
		return errors.NewStorageError("clear tasks", err)
	}

	insert := `
	INSERT INTO tasks (name, priority, completed, created_date, position)
	VALUES (?, ?, ?, ?, ?)`

	for i, record := range records {
		completed := 0
		if record.Completed {
			completed = 1
		}
		if _, err := tx.ExecContext(ctx, insert, record.Name, record.Priority, completed, record.CreatedDate, i); err != nil {
			tx.Rollback()
			return errors.NewStorageError("insert task", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewStorageError("commit tasks", err)
	}
	return nil
}
