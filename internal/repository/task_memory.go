package repository

import (
	"context"
	"sync"
	"sync/atomic"

	apperrors "webclass/internal/errors"
	"webclass/internal/model"
)

// MemoryTaskRepository keeps tasks in process memory, in insertion order.
// IDs come from a counter owned by the store and are never reused.
type MemoryTaskRepository struct {
	mu     sync.RWMutex
	tasks  []model.Task
	nextID atomic.Uint64
}

var _ TaskRepository = (*MemoryTaskRepository)(nil)

// NewMemoryTaskRepository creates a store pre-filled with seed tasks.
// Seed tasks get fresh IDs in the given order.
func NewMemoryTaskRepository(seed ...model.Task) *MemoryTaskRepository {
	r := &MemoryTaskRepository{tasks: make([]model.Task, 0, len(seed))}
	for _, t := range seed {
		t.ID = uint(r.nextID.Add(1))
		r.tasks = append(r.tasks, t)
	}
	return r
}

func (r *MemoryTaskRepository) List(_ context.Context, completed *bool) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if completed != nil && t.Completed != *completed {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *MemoryTaskRepository) FindByID(_ context.Context, id uint) (*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, apperrors.ErrTodoNotFound
	}
	t := r.tasks[i]
	return &t, nil
}

func (r *MemoryTaskRepository) Create(_ context.Context, task *model.Task) error {
	task.ID = uint(r.nextID.Add(1))

	r.mu.Lock()
	r.tasks = append(r.tasks, *task)
	r.mu.Unlock()
	return nil
}

func (r *MemoryTaskRepository) Update(_ context.Context, task *model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(task.ID)
	if i < 0 {
		return apperrors.ErrTodoNotFound
	}
	r.tasks[i] = *task
	return nil
}

func (r *MemoryTaskRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return apperrors.ErrTodoNotFound
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return nil
}

func (r *MemoryTaskRepository) CompleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		r.tasks[i].Completed = true
	}
	return nil
}

// indexOf must be called with mu held.
func (r *MemoryTaskRepository) indexOf(id uint) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
