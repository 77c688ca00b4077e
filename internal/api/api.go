package api

import (
	"context"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/repository/sqlite"
	"task-tracker/internal/validation"
)

// API defines the interface for all task operations.
type API interface {
	// Task workflows
	AddTask(ctx context.Context, name string) (*domain.Task, error)
	CompleteTask(ctx context.Context, id string) error
	UndoTask(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error

	// Task CRUD
	SaveTask(ctx context.Context, task *domain.Task) (string, error)
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
}

type apiImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
	strictIDs     bool
}

// New creates a new API instance with default validation limits.
func New(repo sqlite.Repository) API {
	return NewWithConfig(repo, config.NewConfig())
}

// NewWithConfig creates a new API instance using configured limits and strict mode.
func NewWithConfig(repo sqlite.Repository, cfg *config.Config) API {
	return &apiImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidatorWithConfig(cfg),
		strictIDs:     cfg.Commands.StrictIDs,
	}
}

func (a *apiImpl) AddTask(ctx context.Context, name string) (*domain.Task, error) {
	validName, err := a.taskValidator.GetValidTaskName(name)
	if err != nil {
		return nil, toTaskError(err)
	}

	task := domain.NewTask(validName)
	dbTask := a.mapper.Task.ToDatabase(task)
	if _, err := a.repo.Save(ctx, &dbTask); err != nil {
		return nil, err
	}
	return &task, nil
}

func (a *apiImpl) SaveTask(ctx context.Context, task *domain.Task) (string, error) {
	if task == nil {
		return "", errors.Usage("save task: no task given")
	}
	if err := a.taskValidator.ValidateTask(*task); err != nil {
		return "", toTaskError(err)
	}

	dbTask := a.mapper.Task.ToDatabase(*task)
	return a.repo.Save(ctx, &dbTask)
}

func (a *apiImpl) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	dbTask, err := a.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dbTask == nil {
		return nil, nil
	}
	task := a.mapper.Task.FromDatabase(*dbTask)
	return &task, nil
}

// ListTasks returns every task in display order: open tasks first, then by name.
func (a *apiImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	dbTasks, err := a.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	tasks := a.mapper.Task.FromDatabaseSlice(dbTasks)
	domain.SortForDisplay(tasks)
	return tasks, nil
}

func (a *apiImpl) CompleteTask(ctx context.Context, id string) error {
	if err := a.checkID(id); err != nil {
		return err
	}
	return a.repo.Complete(ctx, id)
}

func (a *apiImpl) UndoTask(ctx context.Context, id string) error {
	if err := a.checkID(id); err != nil {
		return err
	}
	return a.repo.Undo(ctx, id)
}

func (a *apiImpl) DeleteTask(ctx context.Context, id string) error {
	if err := a.checkID(id); err != nil {
		return err
	}
	return a.repo.Delete(ctx, id)
}

// checkID rejects malformed ids in strict mode only; otherwise any string
// is passed through and simply matches no row.
func (a *apiImpl) checkID(id string) error {
	if !a.strictIDs {
		return nil
	}
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return errors.InvalidID(id)
	}
	return nil
}

func toTaskError(err error) error {
	if ve, ok := err.(*validation.ValidationError); ok {
		return ve.ToTaskError()
	}
	return err
}
