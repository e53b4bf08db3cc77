package tasks

import (
	"context"
	"encoding/json"
	"time"

	"hrmanager/config"
	"hrmanager/models"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// AsynqReminderScheduler enqueues reminder tasks on the redis-backed queue,
// scheduled to fire shortly before the applicant's arrival time.
type AsynqReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
}

func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqReminderScheduler{
		client: client,
		lead:   time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}
}

func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, payload models.ReminderPayload) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	fireAt := payload.ArrivalTime.Add(-s.lead)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	task := asynq.NewTask(TypeReminderSend, b)
	_, err = s.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt))
	return err
}

// Close releases the underlying queue connection.
func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}
