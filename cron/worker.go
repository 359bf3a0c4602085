package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"swimly/config"
	"swimly/services/notification"
	"swimly/services/tasks"

	"github.com/hibiken/asynq"
)

// InitMailWorker runs the async email worker in background. Mail delivery
// lives entirely in this worker so a slow SMTP relay can never block or fail
// a booking confirmation response.
func InitMailWorker(mailer notification.Mailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeEmailSend, handleEmailTask(mailer))

	// Start async worker with retry logic.
	go func() {
		log.Println("[MailWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MailWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MailWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleEmailTask(mailer notification.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.EmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[MailWorker] invalid payload: %v", err)
			return err
		}

		if err := mailer.Send(p.To, p.Subject, p.HTML); err != nil {
			log.Printf("[MailWorker] failed to send email to %s: %v", p.To, err)
			return err
		}
		return nil
	}
}
