package rating

import (
	"context"

	appointmentdomain "github.com/barberdesk/booking-api/internal/domain/appointment"
	domain "github.com/barberdesk/booking-api/internal/domain/rating"
	"github.com/barberdesk/booking-api/internal/models"
)

type BarberRatings struct {
	Ratings []models.Rating `json:"ratings"`
	Average *float64        `json:"average"`
}

type ListBarberRatings struct {
	repo domain.Repository
}

func NewListBarberRatings(repo domain.Repository) *ListBarberRatings {
	return &ListBarberRatings{repo: repo}
}

func (uc *ListBarberRatings) Execute(
	ctx context.Context,
	barberID uint,
) (*BarberRatings, error) {

	if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
		return nil, err
	}

	ratings, err := uc.repo.ListRatingsByBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}

	return &BarberRatings{
		Ratings: ratings,
		Average: domain.AverageScore(ratings),
	}, nil
}

// CanReview answers the dashboard's "show the rate button?" question:
// the appointment is completed and nobody rated it yet.
type CanReview struct {
	repo domain.Repository
}

func NewCanReview(repo domain.Repository) *CanReview {
	return &CanReview{repo: repo}
}

func (uc *CanReview) Execute(
	ctx context.Context,
	appointmentID uint,
) (bool, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return false, err
	}

	if appointmentdomain.Status(ap.Status) != appointmentdomain.StatusCompleted {
		return false, nil
	}

	rated, err := uc.repo.HasRatingForAppointment(ctx, appointmentID)
	if err != nil {
		return false, err
	}

	return !rated, nil
}
