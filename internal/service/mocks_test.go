package service_test

import (
	"context"
	"fmt"
	"sync"

	"todoserver/internal/domain"
	"todoserver/internal/store"
)

// mockAccountStore is an in-memory store.AccountStore for service tests.
type mockAccountStore struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
	nextID   int64

	createErr error
	getErr    error
}

func newMockAccountStore() *mockAccountStore {
	return &mockAccountStore{
		accounts: make(map[string]*domain.Account),
		nextID:   1,
	}
}

func (m *mockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createErr != nil {
		return m.createErr
	}
	if _, exists := m.accounts[account.Email]; exists {
		return store.ErrEmailExists
	}

	account.ID = m.nextID
	m.nextID++
	stored := *account
	m.accounts[account.Email] = &stored
	return nil
}

func (m *mockAccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.getErr != nil {
		return nil, m.getErr
	}
	account, ok := m.accounts[email]
	if !ok {
		return nil, store.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

// mockTaskStore is an in-memory store.TaskStore for service tests.
type mockTaskStore struct {
	mu     sync.Mutex
	tasks  []domain.Task
	nextID int64

	createErr error
	listErr   error
	deleteErr error
}

func newMockTaskStore() *mockTaskStore {
	return &mockTaskStore{nextID: 1}
}

func (m *mockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createErr != nil {
		return m.createErr
	}
	task.ID = m.nextID
	m.nextID++
	m.tasks = append(m.tasks, *task)
	return nil
}

func (m *mockTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]domain.Task, len(m.tasks))
	copy(out, m.tasks)
	return out, nil
}

func (m *mockTaskStore) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

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

// plainHasher is a transparent auth.PasswordHasher so tests can assert on
// what would be stored without paying bcrypt cost.
type plainHasher struct {
	hashErr error
}

func (h *plainHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + password, nil
}

func (h *plainHasher) Compare(hashedPassword, password string) error {
	if hashedPassword == "hashed:"+password {
		return nil
	}
	return fmt.Errorf("password mismatch")
}
