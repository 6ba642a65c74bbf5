package store

import (
	"context"
	"errors"

	"github.com/Banup3/TaskManager/internal/taskman/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. Sub-repositories are exposed as methods to keep concerns
// tidy and stop callers from accidentally nesting transactions.
type Store interface {
	Users() Users
	Tasks() Tasks

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction. If fn returns an
	// error, the transaction is rolled back; otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login. Email comparison is
	// case-insensitive (emails are stored lowercase).
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateProfile mutates name/bio/avatar and bumps updated_at. Nil
	// pointers leave the column untouched.
	UpdateProfile(ctx context.Context, userID string, name, bio, avatar *string) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// DeleteUser cascades to tasks (per schema).
	DeleteUser(ctx context.Context, userID string) error
}

type Tasks interface {
	// GetTaskByID returns a task by id regardless of owner. Ownership is
	// the service's concern.
	GetTaskByID(ctx context.Context, id string) (domain.Task, error)

	// ListTasks returns the user's tasks matching the filter, ordered per
	// the filter's SortBy/Order (createdAt desc by default).
	ListTasks(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error)

	// CreateTask inserts a new task (id is ULID, provided by app).
	CreateTask(ctx context.Context, t domain.Task) error

	// UpdateTask overwrites the mutable columns and bumps updated_at.
	UpdateTask(ctx context.Context, t domain.Task) error

	// DeleteTask removes a task by id.
	DeleteTask(ctx context.Context, id string) error

	// CountTasksByStatus returns the per-status breakdown for a user.
	CountTasksByStatus(ctx context.Context, userID string) (domain.TaskStats, error)
}
