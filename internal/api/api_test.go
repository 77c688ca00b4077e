package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/repository/sqlite"
)

func setupTestAPI(t *testing.T) API {
	t.Helper()
	repo, err := config.CreateTestRepository()
	require.NoError(t, err, "failed to create in-memory repo")
	t.Cleanup(func() { repo.Close() })
	return New(repo)
}

func setupStrictAPI(t *testing.T) API {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Commands.StrictIDs = true

	repo, err := sqlite.NewWithOptions(":memory:", config.RepositoryOptions(cfg))
	require.NoError(t, err, "failed to create in-memory repo")
	t.Cleanup(func() { repo.Close() })
	return NewWithConfig(repo, cfg)
}

func TestAPI_AddTask(t *testing.T) {
	api := setupTestAPI(t)
	ctx := context.Background()

	task, err := api.AddTask(ctx, "Buy milk")
	require.NoError(t, err)
	assert.Len(t, task.ID, 8)
	assert.Equal(t, "Buy milk", task.Name)
	assert.False(t, task.Done)

	got, err := api.GetTask(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *task, *got)
}

func TestAPI_AddTask_KeepsNameVerbatim(t *testing.T) {
	api := setupTestAPI(t)
	ctx := context.Background()

	padded, err := api.AddTask(ctx, "  Buy milk  ")
	require.NoError(t, err)
	assert.Equal(t, "  Buy milk  ", padded.Name)

	// the unpadded name is a different task
	_, err = api.AddTask(ctx, "Buy milk")
	require.NoError(t, err)

	got, err := api.GetTask(ctx, padded.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "  Buy milk  ", got.Name)
}

func TestAPI_AddTask_InvalidName(t *testing.T) {
	api := setupTestAPI(t)

	for _, name := range []string{"", "   ", "bad\x00name"} {
		_, err := api.AddTask(context.Background(), name)
		require.Error(t, err, "name %q", name)
		assert.True(t, errors.HasKind(err, errors.KindInvalidName), "name %q", name)
		assert.False(t, errors.ShouldLog(err))
	}

	tasks, err := api.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestAPI_AddTask_DuplicateName(t *testing.T) {
	api := setupTestAPI(t)
	ctx := context.Background()

	_, err := api.AddTask(ctx, "Buy milk")
	require.NoError(t, err)

	_, err = api.AddTask(ctx, "Buy milk")
	require.Error(t, err)
	assert.True(t, errors.HasKind(err, errors.KindDuplicateName))
	assert.Equal(t, `a task named "Buy milk" already exists`, errors.UserMessage(err))
}

func TestAPI_SaveTask_Upsert(t *testing.T) {
	api := setupTestAPI(t)
	ctx := context.Background()

	task := domain.NewTask("Write report")
	id, err := api.SaveTask(ctx, &task)
	require.NoError(t, err)
	assert.Equal(t, task.ID, id)

	task.Name = "Write final report"
	task.Done = true
	_, err = api.SaveTask(ctx, &task)
	require.NoError(t, err)

	tasks, err := api.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task, *tasks[0])
}

func TestAPI_SaveTask_Invalid(t *testing.T) {
	api := setupTestAPI(t)

	_, err := api.SaveTask(context.Background(), nil)
	assert.True(t, errors.HasKind(err, errors.KindUsage))

	_, err = api.SaveTask(context.Background(), &domain.Task{ID: "XYZ", Name: "Task"})
	assert.True(t, errors.HasKind(err, errors.KindInvalidID))

	_, err = api.SaveTask(context.Background(), &domain.Task{ID: "a1b2c3d4", Name: ""})
	assert.True(t, errors.HasKind(err, errors.KindInvalidName))
}

func TestAPI_GetTask_NotFound(t *testing.T) {
	api := setupTestAPI(t)

	task, err := api.GetTask(context.Background(), "00000000")
	assert.NoError(t, err)
	assert.Nil(t, task)
}

func TestAPI_CompleteUndo(t *testing.T) {
	api := setupTestAPI(t)
	ctx := context.Background()

	task, err := api.AddTask(ctx, "Walk dog")
	require.NoError(t, err)

	// repeated calls are stable
	for i := 0; i < 2; i++ {
		require.NoError(t, api.CompleteTask(ctx, task.ID))
		got, err := api.GetTask(ctx, task.ID)
		require.NoError(t, err)
		assert.True(t, got.Done)
	}

	for i := 0; i < 2; i++ {
		require.NoError(t, api.UndoTask(ctx, task.ID))
		got, err := api.GetTask(ctx, task.ID)
		require.NoError(t, err)
		assert.False(t, got.Done)
	}
}

func TestAPI_DeleteTask(t *testing.T) {
	api := setupTestAPI(t)
	ctx := context.Background()

	task, err := api.AddTask(ctx, "Walk dog")
	require.NoError(t, err)

	require.NoError(t, api.DeleteTask(ctx, task.ID))

	got, err := api.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAPI_UnknownID_IsNoOp(t *testing.T) {
	api := setupTestAPI(t)
	ctx := context.Background()

	_, err := api.AddTask(ctx, "Keep me")
	require.NoError(t, err)

	assert.NoError(t, api.CompleteTask(ctx, "ffffffff"))
	assert.NoError(t, api.UndoTask(ctx, "not-an-id"))
	assert.NoError(t, api.DeleteTask(ctx, "ffffffff"))

	tasks, err := api.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.False(t, tasks[0].Done)
}

func TestAPI_StrictIDs(t *testing.T) {
	api := setupStrictAPI(t)
	ctx := context.Background()

	err := api.CompleteTask(ctx, "not-an-id")
	assert.True(t, errors.HasKind(err, errors.KindInvalidID))

	err = api.UndoTask(ctx, "ffffffff")
	assert.True(t, errors.HasKind(err, errors.KindTaskNotFound))

	err = api.DeleteTask(ctx, "ffffffff")
	assert.True(t, errors.HasKind(err, errors.KindTaskNotFound))

	task, err := api.AddTask(ctx, "Real task")
	require.NoError(t, err)
	assert.NoError(t, api.CompleteTask(ctx, task.ID))
	assert.NoError(t, api.DeleteTask(ctx, task.ID))
}

func TestAPI_ListTasks_DisplayOrder(t *testing.T) {
	api := setupTestAPI(t)
	ctx := context.Background()

	apple, err := api.AddTask(ctx, "Apple")
	require.NoError(t, err)
	_, err = api.AddTask(ctx, "Banana")
	require.NoError(t, err)
	_, err = api.AddTask(ctx, "Cherry")
	require.NoError(t, err)
	require.NoError(t, api.CompleteTask(ctx, apple.ID))

	tasks, err := api.ListTasks(ctx)
	require.NoError(t, err)

	names := make([]string, len(tasks))
	for i, task := range tasks {
		names[i] = task.Name
	}
	assert.Equal(t, []string{"Banana", "Cherry", "Apple"}, names)
}

func TestAPI_ListTasks_Empty(t *testing.T) {
	api := setupTestAPI(t)

	tasks, err := api.ListTasks(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}
