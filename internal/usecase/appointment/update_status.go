package appointment

import (
	"context"

	domain "github.com/barberdesk/booking-api/internal/domain/appointment"
	"github.com/barberdesk/booking-api/internal/httperr"
	"github.com/barberdesk/booking-api/internal/models"
	"github.com/barberdesk/booking-api/internal/notify"
	"github.com/barberdesk/booking-api/internal/timezone"
)

type UpdateAppointmentStatus struct {
	repo   domain.Repository
	notify *notify.Dispatcher
	tz     string
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	notify *notify.Dispatcher,
	tz string,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:   repo,
		notify: notify,
		tz:     tz,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	to domain.Status,
) (*models.Appointment, error) {

	if !to.Valid() {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidState)
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Transition(ap, to, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		Type:          eventType(to),
		Title:         eventTitle(to),
		Message:       notify.AppointmentMessage(ap),
		AppointmentID: &ap.ID,
	})

	return ap, nil
}

func eventType(to domain.Status) string {
	switch to {
	case domain.StatusConfirmed:
		return notify.TypeAppointmentConfirmed
	case domain.StatusCompleted:
		return notify.TypeAppointmentCompleted
	default:
		return notify.TypeAppointmentCancelled
	}
}

func eventTitle(to domain.Status) string {
	switch to {
	case domain.StatusConfirmed:
		return "Agendamento confirmado"
	case domain.StatusCompleted:
		return "Agendamento concluído"
	default:
		return "Agendamento cancelado"
	}
}
