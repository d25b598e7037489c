package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"slotgrid/config"
	"slotgrid/utils"

	"github.com/hibiken/asynq"
)

// TypeTimelineInvalidate drops a provider's cached timelines after a
// committed schedule write.
const TypeTimelineInvalidate = "timeline:invalidate"

// invalidatePayload identifies whose cached timelines to drop.
type invalidatePayload struct {
	ProviderID string `json:"providerId"`
}

func taskRedisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}
}

// AsynqInvalidator enqueues timeline invalidation tasks for the background
// worker. It satisfies the schedule service's TimelineInvalidator.
type AsynqInvalidator struct {
	client *asynq.Client
}

// NewAsynqInvalidator constructs an invalidator backed by the task queue.
func NewAsynqInvalidator() *AsynqInvalidator {
	return &AsynqInvalidator{client: asynq.NewClient(taskRedisOpts())}
}

// InvalidateTimelines enqueues a task to drop the provider's cached
// timelines. Unique per provider over a short window so a burst of writes
// enqueues once.
func (a *AsynqInvalidator) InvalidateTimelines(ctx context.Context, providerID string) error {
	payload, err := json.Marshal(invalidatePayload{ProviderID: providerID})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeTimelineInvalidate, payload)
	_, err = a.client.EnqueueContext(ctx, task, asynq.Unique(10*time.Second))
	if errors.Is(err, asynq.ErrDuplicateTask) {
		return nil
	}
	return err
}

// InitInvalidationWorker runs the async worker in background.
func InitInvalidationWorker() {
	srv := asynq.NewServer(
		taskRedisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeTimelineInvalidate, handleInvalidateTask)

	// Start async worker with retry logic.
	go func() {
		log.Println("[InvalidationWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[InvalidationWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[InvalidationWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleInvalidateTask scans the provider's timeline keyspace and deletes
// every cached date.
func handleInvalidateTask(ctx context.Context, task *asynq.Task) error {
	var p invalidatePayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[InvalidationWorker] Invalid payload: %v", err)
		return err
	}

	cache := utils.GetCacheClient()
	pattern := utils.TimelineCachePrefix + p.ProviderID + ":*"

	iter := cache.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := cache.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("[InvalidationWorker] Failed to drop %s: %v", iter.Val(), err)
			return err
		}
	}
	return iter.Err()
}
