// Package di provides dependency injection factories for creating
// application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	taskadapters "taskmaster/internal/feature/tasks/adapters"
	"taskmaster/internal/feature/tasks/usecase"
	"taskmaster/internal/platform/cache"
)

// NewTaskRepository creates the task repository. When Redis is available
// the Postgres repository is wrapped with listing caches; otherwise every
// read goes straight to the database.
func NewTaskRepository(rdb *redis.Client, db *gorm.DB) usecase.TaskRepository {
	repo := taskadapters.NewTaskPostgres(db)
	if rdb != nil {
		return cache.NewCachingTaskRepository(rdb, 0, repo, "tasks")
	}
	return repo
}
