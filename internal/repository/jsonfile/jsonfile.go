// Package jsonfile persists the task collection as a single JSON array on
// disk. Saves overwrite the whole file; loads read the whole file.
package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"todo-list/internal/errors"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"todo-list/internal/repository"
)

// tasksSchema constrains the shape of the persisted file: an array of
// objects with the four record keys at their JSON types. Values are not
// constrained — a hand-edited priority string is allowed through.
const tasksSchema = `{
    "$schema": "https://json-schema.org/draft/2020-12/schema",
    "type": "array",
    "items": {
        "type": "object",
        "required": ["name", "priority", "completed", "created_date"],
        "properties": {
            "name": {"type": "string"},
            "priority": {"type": "string"},
            "completed": {"type": "boolean"},
            "created_date": {"type": "string"}
        }
    }
}`

var compiledSchema = jsonschema.MustCompileString("tasks.schema.json", tasksSchema)

// FileRepository implements repository.Repository over a JSON array file.
type FileRepository struct {
	path string
	perm os.FileMode
}

// New creates a JSON file repository at the given path, creating the
// parent directory if needed. The file itself is created on first save.
func New(path string) (*FileRepository, error) {
	return NewWithPermissions(path, 0644)
}

// NewWithPermissions creates a JSON file repository writing files with the
// given permissions.
func NewWithPermissions(path string, perm os.FileMode) (*FileRepository, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.NewStorageError("create data directory", err)
		}
	}
	return &FileRepository{path: path, perm: perm}, nil
}

// Path returns the backing file path.
func (r *FileRepository) Path() string {
	return r.path
}

// LoadTasks reads and parses the backing file. An absent or zero-length
// file is an empty collection, not an error. A file that is unreadable,
// not valid JSON, or not shaped like a task array is a storage error; the
// caller treats that as recoverable.
func (r *FileRepository) LoadTasks(ctx context.Context) ([]*repository.TaskRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewStorageError("load tasks", err)
	}

	info, err := os.Stat(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewStorageError("stat tasks file", err)
	}
	if info.Size() == 0 {
		return nil, nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, errors.NewStorageError("read tasks file", err)
	}

	if err := validateShape(data); err != nil {
		return nil, err
	}

	var records []*repository.TaskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.NewStorageError("parse tasks file", err)
	}
	return records, nil
}

// SaveTasks serializes the records as a 4-space indented JSON array and
// overwrites the backing file.
func (r *FileRepository) SaveTasks(ctx context.Context, records []*repository.TaskRecord) error {
	if err := ctx.Err(); err != nil {
		return errors.NewStorageError("save tasks", err)
	}

	if records == nil {
		records = []*repository.TaskRecord{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return errors.NewStorageError("encode tasks", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(r.path, data, r.perm); err != nil {
		return errors.NewStorageError("write tasks file", err)
	}
	return nil
}

// Close implements repository.Repository; the file is not held open.
func (r *FileRepository) Close() error {
	return nil
}

// validateShape checks the raw document against the task-array schema.
func validateShape(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.NewStorageError("parse tasks file", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return errors.NewStorageError("validate tasks file", err)
	}
	return nil
}
