package rating

import (
	"context"

	appointmentdomain "github.com/barberdesk/booking-api/internal/domain/appointment"
	domain "github.com/barberdesk/booking-api/internal/domain/rating"
	"github.com/barberdesk/booking-api/internal/httperr"
	"github.com/barberdesk/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateRatingInput struct {
	BarberID uint
	ClientID uint

	Score   int
	Comment string

	AppointmentID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateRating struct {
	repo domain.Repository
}

func NewCreateRating(repo domain.Repository) *CreateRating {
	return &CreateRating{repo: repo}
}

func (uc *CreateRating) Execute(
	ctx context.Context,
	in CreateRatingInput,
) (*models.Rating, error) {

	// Zero score means the form was submitted without picking one.
	if in.Score < 1 || in.Score > 5 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidScore)
	}
	if len(in.Comment) > domain.MaxCommentLen {
		return nil, httperr.ErrBusiness(httperr.CodeCommentTooLong)
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	// A rating may only reference a completed appointment for this
	// barber, and each appointment takes at most one rating.
	if in.AppointmentID != nil {
		ap, err := uc.repo.GetAppointment(ctx, *in.AppointmentID)
		if err != nil {
			if httperr.IsBusiness(err, httperr.CodeNotFound) {
				return nil, httperr.ErrBusiness(httperr.CodeInvalidState)
			}
			return nil, err
		}

		if ap.BarberID != barber.ID {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidState)
		}
		if appointmentdomain.Status(ap.Status) != appointmentdomain.StatusCompleted {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidState)
		}

		rated, err := uc.repo.HasRatingForAppointment(ctx, *in.AppointmentID)
		if err != nil {
			return nil, err
		}
		if rated {
			return nil, httperr.ErrBusiness(httperr.CodeConflict)
		}
	}

	rating := &models.Rating{
		BarberID:      barber.ID,
		ClientID:      client.ID,
		AppointmentID: in.AppointmentID,
		Score:         in.Score,
		Comment:       in.Comment,
	}

	if err := uc.repo.CreateRating(ctx, rating); err != nil {
		return nil, err
	}

	return rating, nil
}
