package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrations_CreatesTasksTable(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(ctx, db, nil))

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'tasks'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "tasks", name)

	version, err := CurrentVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(ctx, db, nil))
	_, err := db.Exec(`INSERT INTO tasks (position, kind, name) VALUES (1, 'todo', 'survives')`)
	require.NoError(t, err)

	require.NoError(t, RunMigrations(ctx, db, nil))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestTasksTable_Constraints(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, RunMigrations(context.Background(), db, nil))

	_, err := db.Exec(`INSERT INTO tasks (position, kind, name) VALUES (1, 'chore', 'x')`)
	assert.Error(t, err, "unknown kinds are rejected")

	_, err = db.Exec(`INSERT INTO tasks (position, kind, name) VALUES (1, 'todo', '   ')`)
	assert.Error(t, err, "blank names are rejected")
}
