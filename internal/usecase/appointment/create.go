package appointment

import (
	"context"
	"time"

	domain "github.com/barberdesk/booking-api/internal/domain/appointment"
	"github.com/barberdesk/booking-api/internal/httperr"
	"github.com/barberdesk/booking-api/internal/models"
	"github.com/barberdesk/booking-api/internal/notify"
	"github.com/barberdesk/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID  uint
	BarberID  uint
	ServiceID uint

	Date string // YYYY-MM-DD
	Time string // HH:mm

	Notes string

	// Confirm books straight into confirmed instead of pending.
	Confirm bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	notify *notify.Dispatcher
	tz     string
}

func NewCreateAppointment(
	repo domain.Repository,
	notify *notify.Dispatcher,
	tz string,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		notify: notify,
		tz:     tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	loc := timezone.Location(uc.tz)

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidSchedule)
	}

	// Every reference must resolve before anything else.
	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	// No bookings in the past.
	now := timezone.NowIn(uc.tz)
	if !start.After(now) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidSchedule)
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// The whole appointment must fit the barber's window for that
	// weekday. No window means the barber is off that day.
	win, err := uc.repo.GetWindow(ctx, in.BarberID, int(start.Weekday()))
	if err != nil {
		return nil, err
	}
	if win == nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidSchedule)
	}

	day := domain.DayWindow{Start: win.StartTime, End: win.EndTime}
	if !day.Contains(start, end) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidSchedule)
	}

	ap := &models.Appointment{
		ClientID:  client.ID,
		BarberID:  barber.ID,
		ServiceID: service.ID,
		StartTime: start,
		EndTime:   end,
		Status:    string(domain.InitialStatus(in.Confirm)),
		Notes:     in.Notes,
	}
	if in.Confirm {
		ap.ConfirmedAt = &now
	}

	// Pending and confirmed bookings block the slot; cancelled and
	// completed ones do not. Check and insert run in one transaction.
	if err := uc.repo.CreateIfNoConflict(ctx, ap); err != nil {
		return nil, err
	}

	ap.Client = *client
	ap.Barber = *barber
	ap.Service = *service

	uc.notify.Dispatch(notify.Event{
		Type:          notify.TypeAppointmentCreated,
		Title:         "Novo agendamento",
		Message:       notify.AppointmentMessage(ap),
		AppointmentID: &ap.ID,
	})

	return ap, nil
}
