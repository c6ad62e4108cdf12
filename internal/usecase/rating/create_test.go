package rating

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appointmentdomain "github.com/barberdesk/booking-api/internal/domain/appointment"
	domain "github.com/barberdesk/booking-api/internal/domain/rating"
	"github.com/barberdesk/booking-api/internal/httperr"
	"github.com/barberdesk/booking-api/internal/models"
)

// fakeRepository is an in-memory domain.Repository for the rating use
// case tests.
type fakeRepository struct {
	barbers      map[uint]*models.Barber
	clients      map[uint]*models.Client
	appointments map[uint]*models.Appointment

	ratings []models.Rating
}

var _ domain.Repository = (*fakeRepository)(nil)

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		barbers:      map[uint]*models.Barber{},
		clients:      map[uint]*models.Client{},
		appointments: map[uint]*models.Appointment{},
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

func (f *fakeRepository) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return ap, nil
}

func (f *fakeRepository) CreateRating(_ context.Context, r *models.Rating) error {
	r.ID = uint(len(f.ratings) + 1)
	f.ratings = append(f.ratings, *r)
	return nil
}

func (f *fakeRepository) ListRatingsByBarber(_ context.Context, barberID uint) ([]models.Rating, error) {
	var out []models.Rating
	for _, r := range f.ratings {
		if r.BarberID == barberID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepository) HasRatingForAppointment(_ context.Context, appointmentID uint) (bool, error) {
	for _, r := range f.ratings {
		if r.AppointmentID != nil && *r.AppointmentID == appointmentID {
			return true, nil
		}
	}
	return false, nil
}

func seededRepo() *fakeRepository {
	repo := newFakeRepository()
	repo.barbers[1] = &models.Barber{ID: 1, Name: "João Barbeiro", Active: true}
	repo.clients[2] = &models.Client{ID: 2, Name: "Carlos Silva"}
	return repo
}

func (f *fakeRepository) addAppointment(id uint, barberID uint, status appointmentdomain.Status) {
	start := time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC)
	f.appointments[id] = &models.Appointment{
		ID:        id,
		BarberID:  barberID,
		ClientID:  2,
		ServiceID: 1,
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Status:    string(status),
	}
}

func uintPtr(v uint) *uint { return &v }

func TestCreateRating(t *testing.T) {
	ctx := context.Background()

	t.Run("free-form rating without an appointment", func(t *testing.T) {
		repo := seededRepo()
		uc := NewCreateRating(repo)

		r, err := uc.Execute(ctx, CreateRatingInput{
			BarberID: 1,
			ClientID: 2,
			Score:    5,
			Comment:  "Excelente atendimento",
		})
		require.NoError(t, err)
		assert.Equal(t, 5, r.Score)
		assert.Nil(t, r.AppointmentID)
		assert.NotZero(t, r.ID)
	})

	t.Run("score bounds", func(t *testing.T) {
		repo := seededRepo()
		uc := NewCreateRating(repo)

		for _, score := range []int{0, -1, 6} {
			_, err := uc.Execute(ctx, CreateRatingInput{BarberID: 1, ClientID: 2, Score: score})
			assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidScore), "score %d", score)
		}
	})

	t.Run("comment length cap", func(t *testing.T) {
		repo := seededRepo()
		uc := NewCreateRating(repo)

		_, err := uc.Execute(ctx, CreateRatingInput{
			BarberID: 1,
			ClientID: 2,
			Score:    4,
			Comment:  strings.Repeat("a", domain.MaxCommentLen+1),
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeCommentTooLong))
	})

	t.Run("completed appointment takes the rating", func(t *testing.T) {
		repo := seededRepo()
		repo.addAppointment(10, 1, appointmentdomain.StatusCompleted)
		uc := NewCreateRating(repo)

		r, err := uc.Execute(ctx, CreateRatingInput{
			BarberID:      1,
			ClientID:      2,
			Score:         4,
			AppointmentID: uintPtr(10),
		})
		require.NoError(t, err)
		require.NotNil(t, r.AppointmentID)
		assert.Equal(t, uint(10), *r.AppointmentID)
	})

	t.Run("non-completed appointment is rejected", func(t *testing.T) {
		repo := seededRepo()
		repo.addAppointment(10, 1, appointmentdomain.StatusPending)
		repo.addAppointment(11, 1, appointmentdomain.StatusConfirmed)
		repo.addAppointment(12, 1, appointmentdomain.StatusCancelled)
		uc := NewCreateRating(repo)

		for _, id := range []uint{10, 11, 12} {
			_, err := uc.Execute(ctx, CreateRatingInput{
				BarberID:      1,
				ClientID:      2,
				Score:         4,
				AppointmentID: uintPtr(id),
			})
			assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState), "appointment %d", id)
		}
	})

	t.Run("appointment of another barber is rejected", func(t *testing.T) {
		repo := seededRepo()
		repo.addAppointment(10, 99, appointmentdomain.StatusCompleted)
		uc := NewCreateRating(repo)

		_, err := uc.Execute(ctx, CreateRatingInput{
			BarberID:      1,
			ClientID:      2,
			Score:         4,
			AppointmentID: uintPtr(10),
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
	})

	t.Run("missing appointment is invalid_state, not not_found", func(t *testing.T) {
		repo := seededRepo()
		uc := NewCreateRating(repo)

		_, err := uc.Execute(ctx, CreateRatingInput{
			BarberID:      1,
			ClientID:      2,
			Score:         4,
			AppointmentID: uintPtr(77),
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
	})

	t.Run("second rating for the same appointment conflicts", func(t *testing.T) {
		repo := seededRepo()
		repo.addAppointment(10, 1, appointmentdomain.StatusCompleted)
		uc := NewCreateRating(repo)

		in := CreateRatingInput{BarberID: 1, ClientID: 2, Score: 4, AppointmentID: uintPtr(10)}

		_, err := uc.Execute(ctx, in)
		require.NoError(t, err)

		_, err = uc.Execute(ctx, in)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeConflict))
	})

	t.Run("unknown barber or client", func(t *testing.T) {
		repo := seededRepo()
		uc := NewCreateRating(repo)

		_, err := uc.Execute(ctx, CreateRatingInput{BarberID: 99, ClientID: 2, Score: 4})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))

		_, err = uc.Execute(ctx, CreateRatingInput{BarberID: 1, ClientID: 99, Score: 4})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
	})
}

func TestListBarberRatings(t *testing.T) {
	ctx := context.Background()

	t.Run("ratings with average", func(t *testing.T) {
		repo := seededRepo()
		uc := NewCreateRating(repo)
		for _, score := range []int{5, 4} {
			_, err := uc.Execute(ctx, CreateRatingInput{BarberID: 1, ClientID: 2, Score: score})
			require.NoError(t, err)
		}

		out, err := NewListBarberRatings(repo).Execute(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, out.Ratings, 2)
		require.NotNil(t, out.Average)
		assert.Equal(t, 4.5, *out.Average)
	})

	t.Run("no ratings yields nil average", func(t *testing.T) {
		repo := seededRepo()

		out, err := NewListBarberRatings(repo).Execute(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, out.Ratings)
		assert.Nil(t, out.Average)
	})

	t.Run("unknown barber", func(t *testing.T) {
		repo := seededRepo()

		_, err := NewListBarberRatings(repo).Execute(ctx, 99)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
	})
}

func TestCanReview(t *testing.T) {
	ctx := context.Background()

	t.Run("completed and unrated", func(t *testing.T) {
		repo := seededRepo()
		repo.addAppointment(10, 1, appointmentdomain.StatusCompleted)

		ok, err := NewCanReview(repo).Execute(ctx, 10)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("not completed", func(t *testing.T) {
		repo := seededRepo()
		repo.addAppointment(10, 1, appointmentdomain.StatusConfirmed)

		ok, err := NewCanReview(repo).Execute(ctx, 10)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("already rated", func(t *testing.T) {
		repo := seededRepo()
		repo.addAppointment(10, 1, appointmentdomain.StatusCompleted)

		_, err := NewCreateRating(repo).Execute(ctx, CreateRatingInput{
			BarberID:      1,
			ClientID:      2,
			Score:         5,
			AppointmentID: uintPtr(10),
		})
		require.NoError(t, err)

		ok, err := NewCanReview(repo).Execute(ctx, 10)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing appointment", func(t *testing.T) {
		repo := seededRepo()

		_, err := NewCanReview(repo).Execute(ctx, 42)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
	})
}
