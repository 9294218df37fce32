package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "webclass/internal/errors"
	"webclass/internal/model"
)

// taskStores runs the same contract against both task store implementations.
var taskStores = map[string]func(t *testing.T) TaskRepository{
	"memory": func(*testing.T) TaskRepository { return NewMemoryTaskRepository() },
	"sqlite": func(t *testing.T) TaskRepository { return NewTaskRepository(setupSQLite(t)) },
}

func boolPtr(b bool) *bool { return &b }

func TestTaskRepository_CRUD(t *testing.T) {
	for name, newRepo := range taskStores {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			ctx := context.Background()

			first := &model.Task{Task: "Learn Go", Priority: "high"}
			second := &model.Task{Task: "Write tests", Priority: "medium"}
			require.NoError(t, repo.Create(ctx, first))
			require.NoError(t, repo.Create(ctx, second))
			assert.NotZero(t, first.ID)
			assert.Greater(t, second.ID, first.ID)

			got, err := repo.FindByID(ctx, first.ID)
			require.NoError(t, err)
			assert.Equal(t, "Learn Go", got.Task)
			assert.False(t, got.Completed)

			got.Completed = true
			require.NoError(t, repo.Update(ctx, got))

			done, err := repo.List(ctx, boolPtr(true))
			require.NoError(t, err)
			require.Len(t, done, 1)
			assert.Equal(t, first.ID, done[0].ID)

			open, err := repo.List(ctx, boolPtr(false))
			require.NoError(t, err)
			require.Len(t, open, 1)
			assert.Equal(t, second.ID, open[0].ID)

			require.NoError(t, repo.Delete(ctx, first.ID))
			all, err := repo.List(ctx, nil)
			require.NoError(t, err)
			require.Len(t, all, 1)
			assert.Equal(t, second.ID, all[0].ID)
		})
	}
}

func TestTaskRepository_NotFound(t *testing.T) {
	for name, newRepo := range taskStores {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			ctx := context.Background()

			_, err := repo.FindByID(ctx, 99)
			assert.ErrorIs(t, err, apperrors.ErrTodoNotFound)

			err = repo.Delete(ctx, 99)
			assert.ErrorIs(t, err, apperrors.ErrTodoNotFound)
		})
	}
}

func TestTaskRepository_EmptyListIsNotNil(t *testing.T) {
	for name, newRepo := range taskStores {
		t.Run(name, func(t *testing.T) {
			tasks, err := newRepo(t).List(context.Background(), nil)
			require.NoError(t, err)
			assert.NotNil(t, tasks)
			assert.Empty(t, tasks)
		})
	}
}

func TestTaskRepository_CompleteAll(t *testing.T) {
	for name, newRepo := range taskStores {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			ctx := context.Background()

			require.NoError(t, repo.Create(ctx, &model.Task{Task: "a", Priority: "low"}))
			require.NoError(t, repo.Create(ctx, &model.Task{Task: "b", Priority: "low"}))
			require.NoError(t, repo.CompleteAll(ctx))

			open, err := repo.List(ctx, boolPtr(false))
			require.NoError(t, err)
			assert.Empty(t, open)
		})
	}
}

func TestTaskRepository_SQLiteErrors(t *testing.T) {
	gormDB, mock := setupMock(t)
	repo := NewTaskRepository(gormDB)

	mock.ExpectQuery("SELECT \\* FROM `todos`").WillReturnError(errors.New("disk I/O error"))

	_, err := repo.FindByID(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrTodoNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryTaskRepository_Seed(t *testing.T) {
	repo := NewMemoryTaskRepository(
		model.Task{Task: "Learn Node.js", Priority: "medium"},
		model.Task{Task: "Build a REST API", Priority: "medium"},
	)

	tasks, err := repo.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, uint(1), tasks[0].ID)
	assert.Equal(t, uint(2), tasks[1].ID)

	next := &model.Task{Task: "third"}
	require.NoError(t, repo.Create(context.Background(), next))
	assert.Equal(t, uint(3), next.ID)
}

func TestMemoryTaskRepository_IDsNotReusedAfterDelete(t *testing.T) {
	repo := NewMemoryTaskRepository()
	ctx := context.Background()

	a := &model.Task{Task: "a"}
	b := &model.Task{Task: "b"}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))
	require.NoError(t, repo.Delete(ctx, b.ID))

	c := &model.Task{Task: "c"}
	require.NoError(t, repo.Create(ctx, c))
	assert.NotEqual(t, b.ID, c.ID)
}

func TestMemoryTaskRepository_ConcurrentCreates(t *testing.T) {
	repo := NewMemoryTaskRepository()
	ctx := context.Background()

	const n = 50
	done := make(chan uint, n)
	for i := 0; i < n; i++ {
		go func() {
			task := &model.Task{Task: "t"}
			_ = repo.Create(ctx, task)
			done <- task.ID
		}()
	}

	seen := make(map[uint]bool, n)
	for i := 0; i < n; i++ {
		id := <-done
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}

	tasks, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, tasks, n)
}

func TestMemoryTaskRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryTaskRepository(model.Task{Task: "a"})
	ctx := context.Background()

	got, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	got.Task = "mutated"

	again, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "a", again.Task)
}
