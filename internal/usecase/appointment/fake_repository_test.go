package appointment

import (
	"context"
	"time"

	domain "github.com/barberdesk/booking-api/internal/domain/appointment"
	"github.com/barberdesk/booking-api/internal/httperr"
	"github.com/barberdesk/booking-api/internal/models"
)

// fakeRepository is an in-memory domain.Repository for use case tests.
// Conflict and day-listing semantics mirror the gorm implementation:
// only pending and confirmed appointments block a slot.
type fakeRepository struct {
	barbers  map[uint]*models.Barber
	clients  map[uint]*models.Client
	services map[uint]*models.Service
	windows  map[uint]map[int]*models.AvailabilityWindow

	appointments map[uint]*models.Appointment
	nextID       uint
}

var _ domain.Repository = (*fakeRepository)(nil)

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		barbers:      map[uint]*models.Barber{},
		clients:      map[uint]*models.Client{},
		services:     map[uint]*models.Service{},
		windows:      map[uint]map[int]*models.AvailabilityWindow{},
		appointments: map[uint]*models.Appointment{},
		nextID:       1,
	}
}

func (f *fakeRepository) addBarber(id uint, name string) {
	f.barbers[id] = &models.Barber{ID: id, Name: name, Active: true}
}

func (f *fakeRepository) addClient(id uint, name string) {
	f.clients[id] = &models.Client{ID: id, Name: name}
}

func (f *fakeRepository) addService(id uint, name string, durationMin int) {
	f.services[id] = &models.Service{
		ID:          id,
		Name:        name,
		DurationMin: durationMin,
		Price:       50,
		Active:      true,
	}
}

func (f *fakeRepository) setWindow(barberID uint, weekday int, start, end string) {
	if f.windows[barberID] == nil {
		f.windows[barberID] = map[int]*models.AvailabilityWindow{}
	}
	f.windows[barberID][weekday] = &models.AvailabilityWindow{
		BarberID:  barberID,
		Weekday:   weekday,
		StartTime: start,
		EndTime:   end,
	}
}

func (f *fakeRepository) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	b, ok := f.barbers[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return b, nil
}

func (f *fakeRepository) GetClient(_ context.Context, id uint) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return c, nil
}

func (f *fakeRepository) GetService(_ context.Context, id uint) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return s, nil
}

// insertAppointment seeds the store directly, bypassing the conflict
// check, for arranging test state.
func (f *fakeRepository) insertAppointment(ap *models.Appointment) {
	ap.ID = f.nextID
	f.nextID++

	stored := *ap
	f.appointments[ap.ID] = &stored
}

func (f *fakeRepository) CreateIfNoConflict(_ context.Context, ap *models.Appointment) error {
	for _, other := range f.appointments {
		if other.BarberID != ap.BarberID {
			continue
		}
		if !domain.Status(other.Status).Blocking() {
			continue
		}
		if domain.Overlaps(ap.StartTime, ap.EndTime, other.StartTime, other.EndTime) {
			return httperr.ErrBusiness(httperr.CodeConflict)
		}
	}

	f.insertAppointment(ap)
	return nil
}

func (f *fakeRepository) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	copied := *ap
	return &copied, nil
}

func (f *fakeRepository) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := f.appointments[ap.ID]; !ok {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}

	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepository) DeleteAppointment(_ context.Context, id uint) error {
	if _, ok := f.appointments[id]; !ok {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	delete(f.appointments, id)
	return nil
}

func (f *fakeRepository) GetWindow(
	_ context.Context,
	barberID uint,
	weekday int,
) (*models.AvailabilityWindow, error) {
	win, ok := f.windows[barberID][weekday]
	if !ok {
		return nil, nil
	}
	return win, nil
}

func (f *fakeRepository) ListAppointmentsForDay(
	_ context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if !domain.Status(ap.Status).Blocking() {
			continue
		}
		if domain.Overlaps(start, end, ap.StartTime, ap.EndTime) {
			out = append(out, *ap)
		}
	}
	return out, nil
}
