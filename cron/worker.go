package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"sanocare/config"
	"sanocare/services/notification"

	"github.com/hibiken/asynq"
)

const TypeDispatchNotice = "notice:dispatch"

// NoticePayload is the queued dispatch notice.
type NoticePayload struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueue,
	}
}

// NoticeQueue enqueues dispatch notices for asynchronous delivery. A queued
// notice survives process restarts and is retried on delivery failure, so a
// committed dispatch never loses its notification silently.
type NoticeQueue struct {
	client *asynq.Client
}

// NewNoticeQueue creates the enqueue side of the delivery queue.
func NewNoticeQueue() *NoticeQueue {
	return &NoticeQueue{client: asynq.NewClient(redisOpt())}
}

// EnqueueDispatchNotice queues one notice with retries.
func (q *NoticeQueue) EnqueueDispatchNotice(recipientPhone, message string) error {
	payload, err := json.Marshal(NoticePayload{Phone: recipientPhone, Message: message})
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch notice: %w", err)
	}
	task := asynq.NewTask(TypeDispatchNotice, payload)
	if _, err := q.client.Enqueue(task, asynq.MaxRetry(5), asynq.Timeout(30*time.Second)); err != nil {
		return fmt.Errorf("failed to enqueue dispatch notice: %w", err)
	}
	return nil
}

// InitNoticeWorker runs the delivery worker in the background.
func InitNoticeWorker(notifier notification.Notifier) {
	srv := asynq.NewServer(
		redisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeDispatchNotice, handleNoticeTask(notifier))

	go func() {
		log.Println("[NoticeWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NoticeWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NoticeWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleNoticeTask(notifier notification.Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p NoticePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[NoticeHandler] invalid payload: %v", err)
			return err
		}

		if err := notifier.Notify(ctx, p.Phone, p.Message); err != nil {
			log.Printf("[NoticeHandler] delivery failed for %s: %v", p.Phone, err)
			return err
		}
		return nil
	}
}
