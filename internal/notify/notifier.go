package notify

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/barberdesk/booking-api/internal/models"
)

const (
	TypeAppointmentCreated   = "appointment_created"
	TypeAppointmentConfirmed = "appointment_confirmed"
	TypeAppointmentCompleted = "appointment_completed"
	TypeAppointmentCancelled = "appointment_cancelled"
	TypeAppointmentReminder  = "appointment_reminder"
)

type Notifier struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Notifier {
	return &Notifier{db: db}
}

func (n *Notifier) Notify(
	kind string,
	title string,
	message string,
	appointmentID *uint,
) error {

	notification := models.Notification{
		Type:          kind,
		Title:         title,
		Message:       message,
		AppointmentID: appointmentID,
	}

	return n.db.Create(&notification).Error
}

// AppointmentMessage renders the standard one-line summary shown in the
// notifications sheet.
func AppointmentMessage(ap *models.Appointment) string {
	return fmt.Sprintf(
		"%s — %s em %s",
		ap.Client.Name,
		ap.Service.Name,
		ap.StartTime.Format("02/01/2006 15:04"),
	)
}
