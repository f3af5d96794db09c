package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"medicore/config"
	"medicore/models"
	"medicore/services/notification"
	"medicore/services/scheduling"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// ReminderLead is how long before the visit the reminder fires.
const ReminderLead = time.Hour

// ReminderClient enqueues visit reminders; it satisfies
// booking.ReminderScheduler.
type ReminderClient struct {
	client *asynq.Client
}

func NewReminderClient() *ReminderClient {
	return &ReminderClient{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

// ScheduleReminder queues a reminder for ReminderLead before the visit. An
// appointment already inside the lead window gets no reminder.
func (c *ReminderClient) ScheduleReminder(ctx context.Context, appt *models.Appointment) error {
	start, err := scheduling.ParseTimeOfDay(appt.StartTime)
	if err != nil {
		return fmt.Errorf("unparseable start time %q: %w", appt.StartTime, err)
	}
	day, err := time.ParseInLocation("2006-01-02", appt.Date, time.Local)
	if err != nil {
		return fmt.Errorf("unparseable date %q: %w", appt.Date, err)
	}
	fireAt := day.Add(time.Duration(start.Minutes())*time.Minute - ReminderLead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(models.ReminderPayload{
		AppointmentID: appt.ID,
		PatientID:     appt.PatientID,
		Title:         "Upcoming appointment",
		Body:          fmt.Sprintf("Your appointment is at %s today.", appt.StartTime),
		FireDate:      fireAt.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := c.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("enqueue reminder: %w", err)
	}
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		if err := notifSvc.SendReminder(ctx, p); err != nil {
			log.Printf("[ReminderHandler] failed to deliver reminder for appointment %s: %v", p.AppointmentID, err)
			return err
		}
		return nil
	}
}
