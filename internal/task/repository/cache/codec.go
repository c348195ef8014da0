package cache

import (
	"encoding/json"
	"fmt"

	"personal-task-sync/internal/model"
	"personal-task-sync/internal/task"
)

// DefaultKey is the well-known key the task list is stored under.
const DefaultKey = "todos"

// Key joins an optional namespace prefix and the storage key.
func Key(prefix, key string) string {
	if key == "" {
		key = DefaultKey
	}
	if prefix == "" {
		return key
	}
	return prefix + ":" + key
}

// encode serialises the list as a single JSON array. There is no version
// field: readers treat absent fields as zero values.
func encode(tasks []model.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	raw, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %v", task.ErrCacheUnavailable, err)
	}
	return raw, nil
}

func decode(raw []byte) ([]model.Task, error) {
	var tasks []model.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return []model.Task{}, fmt.Errorf("%w: decode: %v", task.ErrCacheUnavailable, err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}
