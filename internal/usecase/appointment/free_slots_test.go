package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barberdesk/booking-api/internal/domain/appointment"
	"github.com/barberdesk/booking-api/internal/httperr"
	"github.com/barberdesk/booking-api/internal/models"
	"github.com/barberdesk/booking-api/internal/timezone"
)

func TestFreeSlots(t *testing.T) {
	ctx := context.Background()
	loc := timezone.Location(timezone.DefaultTimezone)

	// A day one week out keeps every slot in the future.
	n := time.Now().In(loc).AddDate(0, 0, 7)
	day := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)

	setup := func(durationMin int) (*fakeRepository, *FreeSlots) {
		repo := newFakeRepository()
		repo.addClient(1, "Carlos Silva")
		repo.addBarber(2, "João Barbeiro")
		repo.addService(3, "Corte Masculino", durationMin)
		repo.setWindow(2, int(day.Weekday()), "09:00", "12:00")
		return repo, NewFreeSlots(repo)
	}

	starts := func(slots []domain.TimeSlot) []string {
		out := make([]string, 0, len(slots))
		for _, s := range slots {
			out = append(out, s.Start)
		}
		return out
	}

	t.Run("steps the window in service-sized slots", func(t *testing.T) {
		_, uc := setup(60)

		slots, err := uc.Execute(ctx, domain.AvailabilityInput{
			BarberID:  2,
			ServiceID: 3,
			Date:      day,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:00", "11:00"}, starts(slots))
		assert.Equal(t, "10:00", slots[0].End)
	})

	t.Run("skips taken slots", func(t *testing.T) {
		repo, uc := setup(60)

		repo.insertAppointment(&models.Appointment{
			ClientID:  1,
			BarberID:  2,
			ServiceID: 3,
			StartTime: day.Add(10 * time.Hour),
			EndTime:   day.Add(11 * time.Hour),
			Status:    string(domain.StatusConfirmed),
		})

		slots, err := uc.Execute(ctx, domain.AvailabilityInput{
			BarberID:  2,
			ServiceID: 3,
			Date:      day,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "11:00"}, starts(slots))
	})

	t.Run("cancelled bookings do not block", func(t *testing.T) {
		repo, uc := setup(60)

		repo.insertAppointment(&models.Appointment{
			ClientID:  1,
			BarberID:  2,
			ServiceID: 3,
			StartTime: day.Add(10 * time.Hour),
			EndTime:   day.Add(11 * time.Hour),
			Status:    string(domain.StatusCancelled),
		})

		slots, err := uc.Execute(ctx, domain.AvailabilityInput{
			BarberID:  2,
			ServiceID: 3,
			Date:      day,
		})
		require.NoError(t, err)
		assert.Len(t, slots, 3)
	})

	t.Run("last slot must fit entirely", func(t *testing.T) {
		_, uc := setup(45)

		slots, err := uc.Execute(ctx, domain.AvailabilityInput{
			BarberID:  2,
			ServiceID: 3,
			Date:      day,
		})
		require.NoError(t, err)
		// 09:00-12:00 holds four full 45-minute slots; 12:00 would end
		// at 12:45, past the window.
		assert.Equal(t, []string{"09:00", "09:45", "10:30", "11:15"}, starts(slots))
	})

	t.Run("slots that already started are not offered", func(t *testing.T) {
		repo := newFakeRepository()
		repo.addBarber(2, "João Barbeiro")
		repo.addService(3, "Corte Masculino", 60)

		past := time.Now().In(loc).AddDate(0, 0, -7)
		pastDay := time.Date(past.Year(), past.Month(), past.Day(), 0, 0, 0, 0, loc)
		repo.setWindow(2, int(pastDay.Weekday()), "09:00", "12:00")

		slots, err := NewFreeSlots(repo).Execute(ctx, domain.AvailabilityInput{
			BarberID:  2,
			ServiceID: 3,
			Date:      pastDay,
		})
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("no window means no slots", func(t *testing.T) {
		repo := newFakeRepository()
		repo.addBarber(2, "João Barbeiro")
		repo.addService(3, "Corte Masculino", 30)
		uc := NewFreeSlots(repo)

		slots, err := uc.Execute(ctx, domain.AvailabilityInput{
			BarberID:  2,
			ServiceID: 3,
			Date:      day,
		})
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("unknown barber or service", func(t *testing.T) {
		_, uc := setup(30)

		_, err := uc.Execute(ctx, domain.AvailabilityInput{BarberID: 99, ServiceID: 3, Date: day})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))

		_, err = uc.Execute(ctx, domain.AvailabilityInput{BarberID: 2, ServiceID: 99, Date: day})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
	})
}
