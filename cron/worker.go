package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"hoofline/config"
	"hoofline/services/notification"

	"github.com/hibiken/asynq"
)

const TypeBookingReminder = "booking:reminder"

// BookingReminderPayload is the task body for an upcoming-appointment
// reminder push.
type BookingReminderPayload struct {
	BookingID  string `json:"bookingId"`
	CustomerID string `json:"customerId"`
	ProviderID string `json:"providerId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
}

// ReminderScheduler enqueues reminder tasks onto the Redis-backed queue.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler builds an enqueue client against the reminder queue DB.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleBookingReminder enqueues a reminder to fire at the given time.
// Reminders in the past are dropped silently; a confirmation made an hour
// before the appointment does not need one.
func (s *ReminderScheduler) ScheduleBookingReminder(p BookingReminderPayload, fireAt time.Time) error {
	if fireAt.Before(time.Now()) {
		return nil
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeBookingReminder, payload)
	_, err = s.client.Enqueue(task, asynq.ProcessAt(fireAt))
	return err
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
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
	mux.HandleFunc(TypeBookingReminder, handleBookingReminder(notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[ReminderWorker] failed to start worker: %v", err)
		}
	}()
}

func handleBookingReminder(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p BookingReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderWorker] invalid payload: %v", err)
			return err
		}

		data := map[string]string{
			"bookingId": p.BookingID,
			"date":      p.Date,
			"startTime": p.StartTime,
		}

		body := fmt.Sprintf("You have an appointment on %s at %s.", p.Date, p.StartTime)
		if err := notifSvc.SendCustomerPush(ctx, p.CustomerID, "Upcoming appointment", body, data); err != nil {
			log.Printf("[ReminderWorker] customer reminder failed: %v", err)
		}

		providerBody := fmt.Sprintf("You have a visit on %s at %s.", p.Date, p.StartTime)
		if err := notifSvc.SendProviderPush(ctx, p.ProviderID, "Upcoming visit", providerBody, data); err != nil {
			log.Printf("[ReminderWorker] provider reminder failed: %v", err)
		}
		return nil
	}
}
