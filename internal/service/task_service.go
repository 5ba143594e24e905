package service

import (
	"context"
	"fmt"
	"log/slog"

	"todoserver/internal/domain"
	"todoserver/internal/redact"
	"todoserver/internal/store"
)

// TaskService provides the task lifecycle: create, list, delete.
// Each operation is a single store interaction with no cross-call ordering
// dependency beyond the store's own consistency guarantees.
type TaskService interface {
	// ListTasks returns all tasks in store-native row order.
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// CreateTask validates the description and persists a new task,
	// returning it with the store-assigned ID.
	CreateTask(ctx context.Context, description string) (*domain.Task, error)

	// DeleteTask removes the task with the given ID. IDs that are not
	// positive fail with domain.ErrInvalidTaskID before any store access;
	// unknown IDs fail with store.ErrTaskNotFound.
	DeleteTask(ctx context.Context, id int64) error
}

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskStore store.TaskStore, log *slog.Logger) *TaskServiceImpl {
	if log == nil {
		log = slog.Default()
	}
	return &TaskServiceImpl{
		taskStore: taskStore,
		logger:    log.With("component", "task_service"),
	}
}

// Ensure TaskServiceImpl implements TaskService
var _ TaskService = (*TaskServiceImpl)(nil)

// ListTasks implements TaskService.ListTasks.
func (s *TaskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", redact.Error(err))
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask implements TaskService.CreateTask.
func (s *TaskServiceImpl) CreateTask(ctx context.Context, description string) (*domain.Task, error) {
	task, err := domain.NewTask(description)
	if err != nil {
		s.logger.Debug("task creation rejected by validation", "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		s.logger.Error("failed to store task", "error", redact.Error(err))
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Debug("task created", "task_id", task.ID)
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrInvalidTaskID)
	}

	if err := s.taskStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			s.logger.Debug("delete targeted a missing task", "task_id", id)
			return err
		}
		s.logger.Error("failed to delete task", "error", redact.Error(err), "task_id", id)
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Debug("task deleted", "task_id", id)
	return nil
}
