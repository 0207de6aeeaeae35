package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"solmar/config"
	"solmar/database/repository/reservation"
	"solmar/models"
	"solmar/services/notification"
	"solmar/services/payment"
	"solmar/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
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
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ReminderWorker] worker stopped: %v", err)
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

		when, err := time.Parse(time.RFC3339, p.BookingDate)
		if err != nil {
			log.Printf("[ReminderHandler] invalid booking date %q: %v", p.BookingDate, err)
			return nil
		}

		body := p.ServiceName + " is coming up on " + when.Format("Jan 2 at 15:04") + "."
		data := map[string]string{
			"bookingId": p.ReservationID,
		}
		if err := notifSvc.SendBookingPush(ctx, p.DeviceToken, "Upcoming booking", body, data); err != nil {
			log.Printf("[ReminderHandler] failed to send reminder for %s: %v", p.ReservationID, err)
			return err
		}
		return nil
	}
}

// StartAuditSweep periodically reports pending reservations that have sat
// unprocessed and orphan charges (charged but never persisted). It only
// surfaces them; reconciliation stays a human decision.
func StartAuditSweep(ctx context.Context, repo reservationRepo.ReservationRepository, guard *payment.ChargeGuard) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Audit sweep shutdown signal received.")
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-48 * time.Hour)
			pending, err := repo.ListPendingOlderThan(ctx, cutoff)
			if err != nil {
				log.Printf("Audit sweep: pending reservation scan failed: %v\n", err)
			} else if len(pending) > 0 {
				log.Printf("Audit sweep: %d reservations still pending since before %s\n", len(pending), cutoff.Format(time.RFC3339))
			}

			orphans, err := guard.OrphanCharges(ctx)
			if err != nil {
				log.Printf("Audit sweep: orphan charge scan failed: %v\n", err)
				continue
			}
			for sessionID, detail := range orphans {
				log.Printf("Audit sweep: orphan charge for session %s (%s) needs manual reconciliation\n", sessionID, detail)
			}
		}
	}
}
