package cli

import (
	"bytes"
	"context"
	"testing"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// mockAPI implements the API interface in memory for testing
type mockAPI struct {
	tasks map[string]*domain.Task
	calls []string

	// err, when set, is returned by every operation
	err error
}

// newMockAPI creates a new mock API instance
func newMockAPI() *mockAPI {
	return &mockAPI{tasks: make(map[string]*domain.Task)}
}

var _ api.API = (*mockAPI)(nil)

func (m *mockAPI) AddTask(ctx context.Context, name string) (*domain.Task, error) {
	m.calls = append(m.calls, "AddTask "+name)
	if m.err != nil {
		return nil, m.err
	}
	for _, task := range m.tasks {
		if task.Name == name {
			return nil, &errors.Error{Kind: errors.KindDuplicateName, Op: "save task", Name: name}
		}
	}
	task := domain.NewTask(name)
	m.tasks[task.ID] = &task
	copied := task
	return &copied, nil
}

func (m *mockAPI) SaveTask(ctx context.Context, task *domain.Task) (string, error) {
	m.calls = append(m.calls, "SaveTask "+task.ID)
	if m.err != nil {
		return "", m.err
	}
	copied := *task
	m.tasks[task.ID] = &copied
	return task.ID, nil
}

func (m *mockAPI) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	m.calls = append(m.calls, "GetTask "+id)
	if m.err != nil {
		return nil, m.err
	}
	task, ok := m.tasks[id]
	if !ok {
		return nil, nil
	}
	copied := *task
	return &copied, nil
}

func (m *mockAPI) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	m.calls = append(m.calls, "ListTasks")
	if m.err != nil {
		return nil, m.err
	}
	tasks := make([]*domain.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		copied := *task
		tasks = append(tasks, &copied)
	}
	domain.SortForDisplay(tasks)
	return tasks, nil
}

func (m *mockAPI) CompleteTask(ctx context.Context, id string) error {
	m.calls = append(m.calls, "CompleteTask "+id)
	return m.setDone(id, true)
}

func (m *mockAPI) UndoTask(ctx context.Context, id string) error {
	m.calls = append(m.calls, "UndoTask "+id)
	return m.setDone(id, false)
}

func (m *mockAPI) DeleteTask(ctx context.Context, id string) error {
	m.calls = append(m.calls, "DeleteTask "+id)
	if m.err != nil {
		return m.err
	}
	delete(m.tasks, id)
	return nil
}

func (m *mockAPI) setDone(id string, done bool) error {
	if m.err != nil {
		return m.err
	}
	if task, ok := m.tasks[id]; ok {
		task.Done = done
	}
	return nil
}

// seed stores a task with a fixed id
func (m *mockAPI) seed(id, name string, done bool) {
	m.tasks[id] = &domain.Task{ID: id, Name: name, Done: done}
}

// setupTestAppWithMockAPI returns an App backed by a mock API and the buffer
// receiving its output
func setupTestAppWithMockAPI(t *testing.T) (*App, *mockAPI, *bytes.Buffer) {
	t.Helper()
	mock := newMockAPI()
	out := &bytes.Buffer{}
	app := NewAppWithConfig(mock, config.NewConfig(), out, nil)
	return app, mock, out
}
