package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "webclass/internal/errors"
	"webclass/internal/model"
)

// TaskRepository defines persistence operations for the task todo variant.
type TaskRepository interface {
	List(ctx context.Context, completed *bool) ([]model.Task, error)
	FindByID(ctx context.Context, id uint) (*model.Task, error)
	Create(ctx context.Context, task *model.Task) error
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id uint) error
	CompleteAll(ctx context.Context) error
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository builds a GORM-backed task repository over the todos table.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) List(ctx context.Context, completed *bool) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	q := r.db.WithContext(ctx).Order("id")
	if completed != nil {
		q = q.Where("completed = ?", *completed)
	}
	if err := q.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *taskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTodoNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &task, nil
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// Update writes every column of an existing task, including zero values.
// Existence is checked by the caller; MySQL reports zero affected rows for no-op updates.
func (r *taskRepository) Update(ctx context.Context, task *model.Task) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", task.ID).
		Select("task", "completed", "priority").
		Updates(task)
	if res.Error != nil {
		return fmt.Errorf("update task: %w", res.Error)
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTodoNotFound
	}
	return nil
}

func (r *taskRepository) CompleteAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("1 = 1").
		Update("completed", true).Error; err != nil {
		return fmt.Errorf("complete tasks: %w", err)
	}
	return nil
}
