package appointment

import (
	"context"
	"time"

	"github.com/barberdesk/booking-api/internal/models"
)

type Repository interface {
	// -------- Entity lookups --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Appointment (create / conflict) --------
	// CreateIfNoConflict checks for overlapping pending or confirmed
	// appointments and inserts in the same transaction, so two
	// concurrent bookings cannot both pass the check. Overlap fails
	// with a conflict business error.
	CreateIfNoConflict(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change / delete) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Availability --------
	// GetWindow returns (nil, nil) when the barber has no window for
	// that weekday; absence is not an error.
	GetWindow(
		ctx context.Context,
		barberID uint,
		weekday int,
	) (*models.AvailabilityWindow, error)

	ListAppointmentsForDay(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
