package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"todoserver/internal/domain"
	"todoserver/internal/platform/logger"
	"todoserver/internal/store"
)

// TaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type TaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTaskStore creates a new PostgreSQL implementation of the
// store.TaskStore interface. If logger is nil, the default logger is used.
func NewTaskStore(db store.DBTX, log *slog.Logger) *TaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &TaskStore{
		db:     db,
		logger: log.With(slog.String("component", "task_store")),
	}
}

// Ensure TaskStore implements store.TaskStore
var _ store.TaskStore = (*TaskStore)(nil)

// Create implements store.TaskStore.Create.
// It fills in the store-assigned ID on success.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContext(ctx)

	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO task (description)
		VALUES ($1)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, task.Description).Scan(&task.ID)
	if err != nil {
		log.Error("failed to create task", "error", err)
		return MapError(err)
	}

	log.Debug("task created", "task_id", task.ID)
	return nil
}

// List implements store.TaskStore.List.
// Tasks come back in store-native row order; an empty table yields an
// empty slice.
func (s *TaskStore) List(ctx context.Context) ([]domain.Task, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, description
		FROM task
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list tasks", "error", err)
		return nil, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", "error", cerr)
		}
	}()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(&task.ID, &task.Description); err != nil {
			log.Error("failed to scan task row", "error", err)
			return nil, MapError(err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return tasks, nil
}

// Delete implements store.TaskStore.Delete.
// Returns store.ErrTaskNotFound when no row was deleted; concurrent deletes
// of the same ID are safe, losers observe the not-found error.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query := `
		DELETE FROM task
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete task", "error", err, "task_id", id)
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "task"); err != nil {
		return fmt.Errorf("%w: id %d", store.ErrTaskNotFound, id)
	}

	log.Debug("task deleted", "task_id", id)
	return nil
}
