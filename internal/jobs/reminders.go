package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	domain "github.com/barberdesk/booking-api/internal/domain/appointment"
	"github.com/barberdesk/booking-api/internal/models"
	"github.com/barberdesk/booking-api/internal/notify"
	"github.com/barberdesk/booking-api/internal/timezone"
)

type ReminderJob struct {
	db       *gorm.DB
	notifier *notify.Notifier
	tz       string
}

func NewReminderJob(db *gorm.DB, notifier *notify.Notifier, tz string) *ReminderJob {
	return &ReminderJob{
		db:       db,
		notifier: notifier,
		tz:       tz,
	}
}

// Start schedules the reminder sweep every five minutes. Failures are
// logged and retried on the next tick, never fatal.
func (j *ReminderJob) Start() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("*/5 * * * *", j.run); err != nil {
		log.Fatalf("failed to schedule reminder job: %v", err)
	}

	c.Start()
	return c
}

func (j *ReminderJob) run() {
	now := timezone.NowIn(j.tz)
	windowStart := now.Add(55 * time.Minute)
	windowEnd := now.Add(65 * time.Minute)

	var appointments []models.Appointment
	err := j.db.
		Preload("Client").
		Preload("Service").
		Where(
			"status = ? AND start_time BETWEEN ? AND ?",
			string(domain.StatusConfirmed), windowStart, windowEnd,
		).
		Find(&appointments).Error
	if err != nil {
		log.Printf("reminder sweep failed: %v", err)
		return
	}

	for i := range appointments {
		ap := &appointments[i]

		// One reminder per appointment.
		var count int64
		j.db.Model(&models.Notification{}).
			Where("type = ? AND appointment_id = ?", notify.TypeAppointmentReminder, ap.ID).
			Count(&count)
		if count > 0 {
			continue
		}

		if err := j.notifier.Notify(
			notify.TypeAppointmentReminder,
			"Agendamento em 1 hora",
			notify.AppointmentMessage(ap),
			&ap.ID,
		); err != nil {
			log.Printf("failed to create reminder for appointment %d: %v", ap.ID, err)
		}
	}
}
