package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmaster/internal/feature/tasks/domain/entity"
)

type mockTaskRepository struct {
	CreateFunc             func(ctx context.Context, task *entity.Task) error
	FindByIDFunc           func(ctx context.Context, id uint) (*entity.Task, error)
	FindByOwnerFunc        func(ctx context.Context, ownerID uint, filter Filter) ([]entity.Task, error)
	FindOverdueByOwnerFunc func(ctx context.Context, ownerID uint, now time.Time) ([]entity.Task, error)
	UpdateFunc             func(ctx context.Context, task *entity.Task) error
	DeleteFunc             func(ctx context.Context, id uint) error
}

func (m *mockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	return m.CreateFunc(ctx, task)
}

func (m *mockTaskRepository) FindByID(ctx context.Context, id uint) (*entity.Task, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockTaskRepository) FindByOwner(ctx context.Context, ownerID uint, filter Filter) ([]entity.Task, error) {
	return m.FindByOwnerFunc(ctx, ownerID, filter)
}

func (m *mockTaskRepository) FindOverdueByOwner(ctx context.Context, ownerID uint, now time.Time) ([]entity.Task, error) {
	return m.FindOverdueByOwnerFunc(ctx, ownerID, now)
}

func (m *mockTaskRepository) Update(ctx context.Context, task *entity.Task) error {
	return m.UpdateFunc(ctx, task)
}

func (m *mockTaskRepository) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

func futureDate(t *testing.T) *time.Time {
	t.Helper()
	d := time.Now().Add(48 * time.Hour)
	return &d
}

func TestTaskUsecase_Create(t *testing.T) {
	t.Parallel()

	t.Run("stores a pending task owned by the caller", func(t *testing.T) {
		t.Parallel()

		var stored *entity.Task
		repo := &mockTaskRepository{
			CreateFunc: func(ctx context.Context, task *entity.Task) error {
				task.ID = 7
				stored = task
				return nil
			},
		}
		u := NewTaskUsecase(repo)

		task, err := u.Create(context.Background(), 42, CreateTaskInput{
			Title:       "  Write report  ",
			Description: "quarterly numbers",
			Priority:    entity.PriorityHigh,
			DueDate:     futureDate(t),
		})
		require.NoError(t, err)
		require.NotNil(t, stored)

		assert.Equal(t, uint(7), task.ID)
		assert.Equal(t, "Write report", task.Title)
		assert.Equal(t, entity.StatusPending, task.Status)
		assert.Equal(t, uint(42), task.OwnerID)
		assert.Nil(t, task.CompletedAt)
	})

	t.Run("validation failures", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name  string
			input CreateTaskInput
		}{
			{
				name:  "empty title",
				input: CreateTaskInput{Title: "   ", Priority: entity.PriorityLow},
			},
			{
				name:  "title too short",
				input: CreateTaskInput{Title: "ab", Priority: entity.PriorityLow},
			},
			{
				name:  "title too long",
				input: CreateTaskInput{Title: strings.Repeat("a", 201), Priority: entity.PriorityLow},
			},
			{
				name: "description too long",
				input: CreateTaskInput{
					Title:       "valid title",
					Description: strings.Repeat("d", 2001),
					Priority:    entity.PriorityLow,
				},
			},
			{
				name:  "unknown priority",
				input: CreateTaskInput{Title: "valid title", Priority: "URGENT"},
			},
			{
				name: "due date in the past",
				input: CreateTaskInput{
					Title:    "valid title",
					Priority: entity.PriorityLow,
					DueDate: func() *time.Time {
						d := time.Now().Add(-time.Hour)
						return &d
					}(),
				},
			},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				repo := &mockTaskRepository{
					CreateFunc: func(ctx context.Context, task *entity.Task) error {
						t.Fatal("repository should not be called")
						return nil
					},
				}
				u := NewTaskUsecase(repo)

				_, err := u.Create(context.Background(), 1, tt.input)

				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
			})
		}
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		t.Parallel()

		repo := &mockTaskRepository{
			CreateFunc: func(ctx context.Context, task *entity.Task) error {
				return errors.New("db down")
			},
		}
		u := NewTaskUsecase(repo)

		_, err := u.Create(context.Background(), 1, CreateTaskInput{
			Title:    "valid title",
			Priority: entity.PriorityLow,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
	})
}

func TestTaskUsecase_List(t *testing.T) {
	t.Parallel()

	t.Run("passes owner and filter through", func(t *testing.T) {
		t.Parallel()

		status := entity.StatusPending
		repo := &mockTaskRepository{
			FindByOwnerFunc: func(ctx context.Context, ownerID uint, filter Filter) ([]entity.Task, error) {
				assert.Equal(t, uint(9), ownerID)
				require.NotNil(t, filter.Status)
				assert.Equal(t, status, *filter.Status)
				return []entity.Task{{ID: 1, OwnerID: 9}}, nil
			},
		}
		u := NewTaskUsecase(repo)

		tasks, err := u.List(context.Background(), 9, Filter{Status: &status})
		require.NoError(t, err)
		assert.Len(t, tasks, 1)
	})

	t.Run("rejects unknown filter values", func(t *testing.T) {
		t.Parallel()

		badStatus := entity.TaskStatus("DONE")
		badPriority := entity.TaskPriority("URGENT")
		u := NewTaskUsecase(&mockTaskRepository{})

		_, err := u.List(context.Background(), 1, Filter{Status: &badStatus})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)

		_, err = u.List(context.Background(), 1, Filter{Priority: &badPriority})
		require.ErrorAs(t, err, &ve)
	})
}

func TestTaskUsecase_ListOverdue(t *testing.T) {
	t.Parallel()

	repo := &mockTaskRepository{
		FindOverdueByOwnerFunc: func(ctx context.Context, ownerID uint, now time.Time) ([]entity.Task, error) {
			assert.Equal(t, uint(3), ownerID)
			assert.WithinDuration(t, time.Now(), now, time.Second)
			return []entity.Task{{ID: 5, OwnerID: 3}}, nil
		},
	}
	u := NewTaskUsecase(repo)

	tasks, err := u.ListOverdue(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestTaskUsecase_GetByID(t *testing.T) {
	t.Parallel()

	owned := []entity.Task{
		{ID: 1, Title: "mine", OwnerID: 4},
		{ID: 2, Title: "also mine", OwnerID: 4},
	}

	t.Run("returns the caller's task", func(t *testing.T) {
		t.Parallel()

		repo := &mockTaskRepository{
			FindByOwnerFunc: func(ctx context.Context, ownerID uint, filter Filter) ([]entity.Task, error) {
				assert.Equal(t, uint(4), ownerID)
				return owned, nil
			},
		}
		u := NewTaskUsecase(repo)

		task, err := u.GetByID(context.Background(), 4, 2)
		require.NoError(t, err)
		assert.Equal(t, "also mine", task.Title)
	})

	t.Run("missing id reports not found", func(t *testing.T) {
		t.Parallel()

		repo := &mockTaskRepository{
			FindByOwnerFunc: func(ctx context.Context, ownerID uint, filter Filter) ([]entity.Task, error) {
				return owned, nil
			},
		}
		u := NewTaskUsecase(repo)

		_, err := u.GetByID(context.Background(), 4, 777)
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("someone else's task reports not found, not forbidden", func(t *testing.T) {
		t.Parallel()

		// Task 99 exists but belongs to user 8; user 4's listing never
		// includes it, so the response is identical to a missing id.
		repo := &mockTaskRepository{
			FindByOwnerFunc: func(ctx context.Context, ownerID uint, filter Filter) ([]entity.Task, error) {
				return owned, nil
			},
		}
		u := NewTaskUsecase(repo)

		_, err := u.GetByID(context.Background(), 4, 99)
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})
}

func TestTaskUsecase_Update(t *testing.T) {
	t.Parallel()

	t.Run("updates the caller's task", func(t *testing.T) {
		t.Parallel()

		repo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Task, error) {
				return &entity.Task{ID: id, Title: "old", OwnerID: 4}, nil
			},
			UpdateFunc: func(ctx context.Context, task *entity.Task) error {
				return nil
			},
		}
		u := NewTaskUsecase(repo)

		task, err := u.Update(context.Background(), 4, 1, UpdateTaskInput{
			Title:       "new title",
			Description: "updated",
			Priority:    entity.PriorityMedium,
			DueDate:     futureDate(t),
		})
		require.NoError(t, err)
		assert.Equal(t, "new title", task.Title)
		assert.Equal(t, entity.PriorityMedium, task.Priority)
	})

	t.Run("another user's task reports not found", func(t *testing.T) {
		t.Parallel()

		repo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Task, error) {
				return &entity.Task{ID: id, OwnerID: 8}, nil
			},
			UpdateFunc: func(ctx context.Context, task *entity.Task) error {
				t.Fatal("update should not be called")
				return nil
			},
		}
		u := NewTaskUsecase(repo)

		_, err := u.Update(context.Background(), 4, 1, UpdateTaskInput{
			Title:    "new title",
			Priority: entity.PriorityLow,
		})
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("invalid payload rejected after ownership check", func(t *testing.T) {
		t.Parallel()

		repo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Task, error) {
				return &entity.Task{ID: id, OwnerID: 4}, nil
			},
			UpdateFunc: func(ctx context.Context, task *entity.Task) error {
				t.Fatal("update should not be called")
				return nil
			},
		}
		u := NewTaskUsecase(repo)

		_, err := u.Update(context.Background(), 4, 1, UpdateTaskInput{
			Title:    "ab",
			Priority: entity.PriorityLow,
		})

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})
}

func TestTaskUsecase_UpdateStatus(t *testing.T) {
	t.Parallel()

	t.Run("completes a pending task", func(t *testing.T) {
		t.Parallel()

		var updated *entity.Task
		repo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Task, error) {
				return &entity.Task{ID: id, Status: entity.StatusPending, OwnerID: 4}, nil
			},
			UpdateFunc: func(ctx context.Context, task *entity.Task) error {
				updated = task
				return nil
			},
		}
		u := NewTaskUsecase(repo)

		task, err := u.UpdateStatus(context.Background(), 4, 1, entity.StatusCompleted)
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Equal(t, entity.StatusCompleted, task.Status)
		require.NotNil(t, task.CompletedAt)
		assert.WithinDuration(t, time.Now(), *task.CompletedAt, time.Second)
	})

	t.Run("reopening clears the completion timestamp", func(t *testing.T) {
		t.Parallel()

		done := time.Now().Add(-time.Hour)
		repo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Task, error) {
				return &entity.Task{ID: id, Status: entity.StatusCompleted, CompletedAt: &done, OwnerID: 4}, nil
			},
			UpdateFunc: func(ctx context.Context, task *entity.Task) error {
				return nil
			},
		}
		u := NewTaskUsecase(repo)

		task, err := u.UpdateStatus(context.Background(), 4, 1, entity.StatusPending)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, task.Status)
		assert.Nil(t, task.CompletedAt)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		t.Parallel()

		done := time.Now().Add(-time.Hour)
		repo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Task, error) {
				return &entity.Task{ID: id, Status: entity.StatusCompleted, CompletedAt: &done, OwnerID: 4}, nil
			},
			UpdateFunc: func(ctx context.Context, task *entity.Task) error {
				t.Fatal("update should not be called for an unchanged status")
				return nil
			},
		}
		u := NewTaskUsecase(repo)

		task, err := u.UpdateStatus(context.Background(), 4, 1, entity.StatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, task.Status)
		require.NotNil(t, task.CompletedAt)
		assert.Equal(t, done, *task.CompletedAt)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		t.Parallel()

		u := NewTaskUsecase(&mockTaskRepository{})

		_, err := u.UpdateStatus(context.Background(), 4, 1, "ARCHIVED")

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("another user's task reports not found", func(t *testing.T) {
		t.Parallel()

		repo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Task, error) {
				return &entity.Task{ID: id, Status: entity.StatusPending, OwnerID: 8}, nil
			},
		}
		u := NewTaskUsecase(repo)

		_, err := u.UpdateStatus(context.Background(), 4, 1, entity.StatusCompleted)
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})
}

func TestTaskUsecase_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deletes the caller's task", func(t *testing.T) {
		t.Parallel()

		deleted := false
		repo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Task, error) {
				return &entity.Task{ID: id, OwnerID: 4}, nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				assert.Equal(t, uint(1), id)
				deleted = true
				return nil
			},
		}
		u := NewTaskUsecase(repo)

		err := u.Delete(context.Background(), 4, 1)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("another user's task reports not found", func(t *testing.T) {
		t.Parallel()

		repo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Task, error) {
				return &entity.Task{ID: id, OwnerID: 8}, nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				t.Fatal("delete should not be called")
				return nil
			},
		}
		u := NewTaskUsecase(repo)

		err := u.Delete(context.Background(), 4, 1)
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("missing task reports not found", func(t *testing.T) {
		t.Parallel()

		repo := &mockTaskRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Task, error) {
				return nil, ErrTaskNotFound
			},
		}
		u := NewTaskUsecase(repo)

		err := u.Delete(context.Background(), 4, 1)
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})
}
