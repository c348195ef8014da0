package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"personal-task-sync/internal/model"
	"personal-task-sync/internal/task"
	"personal-task-sync/internal/task/repository"
	pkgLog "personal-task-sync/pkg/log"
)

type redisCache struct {
	client *redis.Client
	key    string
	l      pkgLog.Logger
}

// NewRedis stores the task list as a single string value under key.
func NewRedis(client *redis.Client, key string, l pkgLog.Logger) repository.CacheRepository {
	if client == nil {
		panic("task/repository/cache: redis client is required")
	}
	return &redisCache{client: client, key: key, l: l}
}

func (c *redisCache) Read(ctx context.Context) []model.Task {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []model.Task{}
	}
	if err != nil {
		c.l.Warnf(ctx, "cache redis: get %s: %v", c.key, fmt.Errorf("%w: %v", task.ErrCacheUnavailable, err))
		return []model.Task{}
	}

	tasks, err := decode(raw)
	if err != nil {
		c.l.Warnf(ctx, "cache redis: %s: %v", c.key, err)
	}
	return tasks
}

func (c *redisCache) Write(ctx context.Context, tasks []model.Task) {
	raw, err := encode(tasks)
	if err != nil {
		c.l.Warnf(ctx, "cache redis: %s: %v", c.key, err)
		return
	}
	if err := c.client.Set(ctx, c.key, raw, 0).Err(); err != nil {
		c.l.Warnf(ctx, "cache redis: set %s: %v", c.key, fmt.Errorf("%w: %v", task.ErrCacheUnavailable, err))
	}
}
