package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"duke/internal/errors"
	"duke/internal/repository/sqlite/migrations"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

const (
	defaultQueryTimeout = 10 * time.Second
	defaultWriteTimeout = 5 * time.Second
)

// Repository defines the interface for task list storage
type Repository interface {
	// LoadTasks returns the stored tasks ordered by position
	LoadTasks(ctx context.Context) ([]*Task, error)
	// SaveTasks replaces the stored list with tasks
	SaveTasks(ctx context.Context, tasks []Task) error
	CountTasks(ctx context.Context) (int, error)

	Close() error
}

// Options tunes a SQLiteRepository
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
	Logger       logrus.FieldLogger
}

// migrationLogger sends goose progress to the debug level
type migrationLogger struct {
	logrus.FieldLogger
}

func (l migrationLogger) Printf(format string, v ...interface{}) {
	l.Debugf(strings.TrimSuffix(format, "\n"), v...)
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
	writeTimeout time.Duration
}

// New creates a new SQLite repository instance with default options
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, Options{})
}

// NewWithOptions creates a new SQLite repository instance and migrates its schema
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}
	// one connection keeps :memory: databases alive and serialises writers
	db.SetMaxOpenConns(1)

	repo := &SQLiteRepository{
		db:           db,
		queryTimeout: opts.QueryTimeout,
		writeTimeout: opts.WriteTimeout,
	}
	if repo.queryTimeout <= 0 {
		repo.queryTimeout = defaultQueryTimeout
	}
	if repo.writeTimeout <= 0 {
		repo.writeTimeout = defaultWriteTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), repo.writeTimeout)
	defer cancel()

	var migrationLog goose.Logger
	if opts.Logger != nil {
		migrationLog = migrationLogger{opts.Logger}
	}
	if err := migrations.RunMigrations(ctx, db, migrationLog); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return repo, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// LoadTasks retrieves all tasks in list order
func (r *SQLiteRepository) LoadTasks(ctx context.Context) ([]*Task, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `
	SELECT position, kind, name, done, due_date
	FROM tasks
	ORDER BY position ASC`

	tasks, err := QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*Task{}
	}
	return tasks, nil
}

// SaveTasks replaces the stored list in a single transaction. Positions are
// taken from the rows so the stored order matches the caller's order.
func (r *SQLiteRepository) SaveTasks(ctx context.Context, tasks []Task) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	return ExecuteInTransaction(ctx, r.db, "save tasks", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (position, kind, name, done, due_date)
		VALUES (?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, task := range tasks {
			if _, err := stmt.ExecContext(ctx, task.Position, task.Kind, task.Name, task.Done, FormatDatePtrForDB(task.Date)); err != nil {
				return err
			}
		}
		return nil
	})
}

// CountTasks returns the number of stored tasks
func (r *SQLiteRepository) CountTasks(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	return QueryInt(ctx, r.db, `SELECT COUNT(*) FROM tasks`)
}
