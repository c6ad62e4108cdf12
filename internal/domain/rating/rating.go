package rating

import (
	"context"

	"github.com/barberdesk/booking-api/internal/models"
)

const MaxCommentLen = 500

type Repository interface {
	GetBarber(ctx context.Context, id uint) (*models.Barber, error)
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)

	CreateRating(ctx context.Context, r *models.Rating) error
	ListRatingsByBarber(ctx context.Context, barberID uint) ([]models.Rating, error)
	HasRatingForAppointment(ctx context.Context, appointmentID uint) (bool, error)
}

// AverageScore is the single place the aggregate barber rating is
// computed. Returns nil when the barber has no ratings yet.
func AverageScore(ratings []models.Rating) *float64 {
	if len(ratings) == 0 {
		return nil
	}

	var sum int
	for _, r := range ratings {
		sum += r.Score
	}

	avg := float64(sum) / float64(len(ratings))
	return &avg
}
