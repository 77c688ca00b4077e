package sqlite

import (
	"context"
	_ "embed"
	"time"

	"github.com/jmoiron/sqlx"

	"task-tracker/internal/errors"
	"task-tracker/internal/logging"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Repository defines the interface for task persistence
type Repository interface {
	// Schema
	EnsureSchema(ctx context.Context) error

	// Write operations
	Save(ctx context.Context, task *Task) (string, error)
	Complete(ctx context.Context, id string) error
	Undo(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error

	// Read operations
	GetByID(ctx context.Context, id string) (*Task, error)
	GetAll(ctx context.Context) ([]*Task, error)

	// Utility
	Close() error
}

// Options tunes a SQLiteRepository
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
	// StrictIDs turns complete/undo/delete of an unknown id into a not found
	// error instead of a silent no-op.
	StrictIDs bool
}

// DefaultOptions returns the options used by New
func DefaultOptions() Options {
	return Options{
		QueryTimeout: 10 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db   *sqlx.DB
	opts Options
}

var _ Repository = (*SQLiteRepository)(nil)

// New creates a new SQLite repository instance with default options
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, DefaultOptions())
}

// NewWithOptions opens the database at dbPath and ensures the task table exists
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.Storage("open database", err)
	}
	// one command, one connection; also keeps a :memory: database alive
	db.SetMaxOpenConns(1)

	repo := &SQLiteRepository{db: db, opts: opts}
	if err := repo.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	logging.Debugf("opened task store at %s", dbPath)
	return repo, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// EnsureSchema creates the task table if it does not exist. It never touches rows.
func (r *SQLiteRepository) EnsureSchema(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, schemaSQL); err != nil {
		return errors.Storage("ensure schema", err)
	}
	return nil
}

// Save inserts the task, or overwrites name and done when the id already exists.
// Reusing another task's name fails with a duplicate name error.
func (r *SQLiteRepository) Save(ctx context.Context, task *Task) (string, error) {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	query := `
	INSERT INTO task (id, name, done)
	VALUES (:id, :name, :done)
	ON CONFLICT (id) DO UPDATE SET
		name = excluded.name,
		done = excluded.done`

	if _, err := r.db.NamedExecContext(ctx, query, task); err != nil {
		return "", errors.WithTask(HandleDatabaseError("save task", err), task.ID, task.Name)
	}

	logging.Debugf("saved task %s", task.ID)
	return task.ID, nil
}

// GetByID retrieves a task by id. It returns (nil, nil) when no task matches.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*Task, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `SELECT id, name, done FROM task WHERE id = ?`
	return QuerySingle[Task](ctx, r.db, "get task", query, id)
}

// GetAll retrieves every task in storage order
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]*Task, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `SELECT id, name, done FROM task`
	return QueryMultiple[Task](ctx, r.db, "list tasks", query)
}

// Complete marks a task as done
func (r *SQLiteRepository) Complete(ctx context.Context, id string) error {
	return r.setDone(ctx, "complete task", id, true)
}

// Undo marks a task as not done
func (r *SQLiteRepository) Undo(ctx context.Context, id string) error {
	return r.setDone(ctx, "undo task", id, false)
}

// Delete removes a task by id
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM task WHERE id = ?`
	return r.exec(ctx, "delete task", id, query, id)
}

func (r *SQLiteRepository) setDone(ctx context.Context, operation string, id string, done bool) error {
	query := `UPDATE task SET done = ? WHERE id = ?`
	return r.exec(ctx, operation, id, query, done, id)
}

// exec runs a write addressed by id. Unknown ids are a no-op unless StrictIDs is set.
func (r *SQLiteRepository) exec(ctx context.Context, operation string, id string, query string, args ...interface{}) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	if r.opts.StrictIDs {
		return ExecuteWithRowsAffected(ctx, r.db, operation, query, id, args...)
	}

	result, err := Execute(ctx, r.db, operation, query, args...)
	if err != nil {
		return err
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		logging.Debugf("%s: no task with id %s", operation, id)
	}
	return nil
}
