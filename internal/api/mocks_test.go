package api_test

import (
	"context"

	"todoserver/internal/domain"
	"todoserver/internal/service"
	"todoserver/internal/store"
)

// mockAuthService implements service.AuthService with canned behavior.
type mockAuthService struct {
	registerAccount *domain.Account
	registerErr     error
	loginResult     *service.LoginResult
	loginErr        error
}

func (m *mockAuthService) Register(ctx context.Context, email, password string) (*domain.Account, error) {
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	if m.registerAccount != nil {
		return m.registerAccount, nil
	}
	account, err := domain.NewAccount(email, password)
	if err != nil {
		return nil, err
	}
	account.ID = 1
	account.Password = ""
	return account, nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*service.LoginResult, error) {
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return m.loginResult, nil
}

// mockTaskService implements service.TaskService over a slice.
type mockTaskService struct {
	tasks     []domain.Task
	nextID    int64
	createErr error
	listErr   error
	deleteErr error
}

func newMockTaskService() *mockTaskService {
	return &mockTaskService{nextID: 1}
}

func (m *mockTaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]domain.Task, len(m.tasks))
	copy(out, m.tasks)
	return out, nil
}

func (m *mockTaskService) CreateTask(ctx context.Context, description string) (*domain.Task, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	task, err := domain.NewTask(description)
	if err != nil {
		return nil, domain.ErrValidation
	}
	task.ID = m.nextID
	m.nextID++
	m.tasks = append(m.tasks, *task)
	return task, nil
}

func (m *mockTaskService) DeleteTask(ctx context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i, task := range m.tasks {
		if task.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return store.ErrTaskNotFound
}

var (
	_ service.AuthService = (*mockAuthService)(nil)
	_ service.TaskService = (*mockTaskService)(nil)
)
