package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/rohandas-dev/cabinet/internal/models"
)

const thumbnailQueueKey = "fileQueue"

// JobQueue carries thumbnail jobs from the upload handler to the worker.
// There is no retry policy: a failed job is logged and dropped.
type JobQueue interface {
	Enqueue(ctx context.Context, job models.ThumbnailJob) error
	// Dequeue blocks until a job is available or ctx is done.
	Dequeue(ctx context.Context) (*models.ThumbnailJob, error)
}

type redisJobQueue struct {
	client *redis.Client
}

func NewJobQueue(client *redis.Client) JobQueue {
	return &redisJobQueue{client: client}
}

func (q *redisJobQueue) Enqueue(ctx context.Context, job models.ThumbnailJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return q.client.RPush(ctx, thumbnailQueueKey, payload).Err()
}

func (q *redisJobQueue) Dequeue(ctx context.Context) (*models.ThumbnailJob, error) {
	res, err := q.client.BLPop(ctx, 0, thumbnailQueueKey).Result()
	if err != nil {
		return nil, err
	}
	if len(res) != 2 {
		return nil, errors.New("malformed queue reply")
	}

	var job models.ThumbnailJob
	if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
		return nil, err
	}
	return &job, nil
}
