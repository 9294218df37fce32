package repository

import (
	"context"
	"sync"
	"sync/atomic"

	apperrors "webclass/internal/errors"
	"webclass/internal/model"
)

// ActivityRepository defines persistence operations for the activity todo variant.
type ActivityRepository interface {
	List(ctx context.Context, complete *bool) ([]model.Activity, error)
	FindByID(ctx context.Context, id uint) (*model.Activity, error)
	Create(ctx context.Context, activity *model.Activity) error
	Update(ctx context.Context, activity *model.Activity) error
	Delete(ctx context.Context, id uint) error
}

// MemoryActivityRepository keeps activities in process memory, in insertion order.
type MemoryActivityRepository struct {
	mu         sync.RWMutex
	activities []model.Activity
	nextID     atomic.Uint64
}

var _ ActivityRepository = (*MemoryActivityRepository)(nil)

// NewMemoryActivityRepository creates an empty store.
func NewMemoryActivityRepository() *MemoryActivityRepository {
	return &MemoryActivityRepository{activities: make([]model.Activity, 0)}
}

func (r *MemoryActivityRepository) List(_ context.Context, complete *bool) ([]model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Activity, 0, len(r.activities))
	for _, a := range r.activities {
		if complete != nil && a.IsComplete != *complete {
			continue
		}
		out = append(out, cloneActivity(a))
	}
	return out, nil
}

func (r *MemoryActivityRepository) FindByID(_ context.Context, id uint) (*model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, apperrors.ErrTodoNotFound
	}
	a := cloneActivity(r.activities[i])
	return &a, nil
}

func (r *MemoryActivityRepository) Create(_ context.Context, activity *model.Activity) error {
	activity.ID = uint(r.nextID.Add(1))

	r.mu.Lock()
	r.activities = append(r.activities, cloneActivity(*activity))
	r.mu.Unlock()
	return nil
}

func (r *MemoryActivityRepository) Update(_ context.Context, activity *model.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(activity.ID)
	if i < 0 {
		return apperrors.ErrTodoNotFound
	}
	r.activities[i] = cloneActivity(*activity)
	return nil
}

func (r *MemoryActivityRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return apperrors.ErrTodoNotFound
	}
	r.activities = append(r.activities[:i], r.activities[i+1:]...)
	return nil
}

func (r *MemoryActivityRepository) indexOf(id uint) int {
	for i := range r.activities {
		if r.activities[i].ID == id {
			return i
		}
	}
	return -1
}

// cloneActivity copies the IsFun pointer so callers never share state with the store.
func cloneActivity(a model.Activity) model.Activity {
	if a.IsFun != nil {
		fun := *a.IsFun
		a.IsFun = &fun
	}
	return a
}
