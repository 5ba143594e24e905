package store

import (
	"context"

	"todoserver/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store and fills in the
	// store-assigned ID on success.
	Create(ctx context.Context, task *domain.Task) error

	// List returns all tasks in store-native row order.
	// An empty store yields an empty slice, not an error.
	List(ctx context.Context) ([]domain.Task, error)

	// Delete removes a task by its ID.
	// Returns ErrTaskNotFound if no row was deleted, including when a
	// concurrent delete of the same ID got there first.
	Delete(ctx context.Context, id int64) error
}
