package service

import (
	"context"
	"strings"

	apperrors "webclass/internal/errors"
	"webclass/internal/model"
	"webclass/internal/repository"
)

// CreateTaskInput is the body of a task creation.
type CreateTaskInput struct {
	Task     string
	Priority string
}

// UpdateTaskInput carries the fields present in a partial update.
type UpdateTaskInput struct {
	Task      *string
	Completed *bool
	Priority  *string
}

// TaskService implements the task todo variant.
type TaskService interface {
	List(ctx context.Context, completed *bool) ([]model.Task, error)
	Get(ctx context.Context, id uint) (*model.Task, error)
	Create(ctx context.Context, in CreateTaskInput) (*model.Task, error)
	Update(ctx context.Context, id uint, in UpdateTaskInput) (*model.Task, error)
	Delete(ctx context.Context, id uint) error
	CompleteAll(ctx context.Context) error
}

type taskService struct {
	repo repository.TaskRepository
}

// NewTaskService creates a task service over any task store.
func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

func (s *taskService) List(ctx context.Context, completed *bool) ([]model.Task, error) {
	return s.repo.List(ctx, completed)
}

func (s *taskService) Get(ctx context.Context, id uint) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

// Create stores a new incomplete task. An empty task text yields ErrMissingFields.
func (s *taskService) Create(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	if strings.TrimSpace(in.Task) == "" {
		return nil, apperrors.ErrMissingFields
	}
	priority := in.Priority
	if priority == "" {
		priority = model.DefaultTaskPriority
	}

	task := &model.Task{Task: in.Task, Completed: false, Priority: priority}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update merges the present fields into the stored task. Empty strings keep the old value.
func (s *taskService) Update(ctx context.Context, id uint, in UpdateTaskInput) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Task != nil && *in.Task != "" {
		task.Task = *in.Task
	}
	if in.Completed != nil {
		task.Completed = *in.Completed
	}
	if in.Priority != nil && *in.Priority != "" {
		task.Priority = *in.Priority
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *taskService) CompleteAll(ctx context.Context) error {
	return s.repo.CompleteAll(ctx)
}
