// Package migrations applies the embedded schema migrations for the
// SQLite task backend. Applied versions are tracked in a migrations
// table so reruns are no-ops.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
)

//go:embed *.sql
var migrationFiles embed.FS

const upSuffix = ".up.sql"

type migration struct {
	version int
	name    string
	up      string
}

// RunMigrations brings the database schema up to the latest version.
func RunMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	pending, err := pendingMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range pending {
		if err := apply(db, m); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", m.name, err)
		}
	}
	return nil
}

// pendingMigrations returns the embedded up migrations that have not yet
// been recorded as applied, in version order.
func pendingMigrations(db *sql.DB) ([]migration, error) {
	applied, err := appliedVersions(db)
	if err != nil {
		return nil, fmt.Errorf("failed to read applied migrations: %w", err)
	}

	names, err := fs.Glob(migrationFiles, "*"+upSuffix)
	if err != nil {
		return nil, err
	}

	var pending []migration
	for _, name := range names {
		version, err := versionOf(name)
		if err != nil {
			return nil, err
		}
		if applied[version] {
			continue
		}
		up, err := migrationFiles.ReadFile(name)
		if err != nil {
			return nil, err
		}
		pending = append(pending, migration{version: version, name: name, up: string(up)})
	}

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].version < pending[j].version
	})
	return pending, nil
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

// apply runs one migration and records its version, atomically.
func apply(db *sql.DB, m migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(m.up); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec("INSERT INTO migrations (version) VALUES (?)", m.version); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// versionOf extracts the numeric version prefix from a migration
// filename such as 000001_create_tasks.up.sql.
func versionOf(name string) (int, error) {
	prefix, _, found := strings.Cut(name, "_")
	if !found {
		return 0, fmt.Errorf("migration file %s has no version prefix", name)
	}
	version, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, fmt.Errorf("migration file %s has a non-numeric version prefix", name)
	}
	return version, nil
}
