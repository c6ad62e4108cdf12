package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/barberdesk/booking-api/internal/domain/rating"
	"github.com/barberdesk/booking-api/internal/models"
)

type RatingGormRepository struct {
	db *gorm.DB
}

func NewRatingGormRepository(db *gorm.DB) *RatingGormRepository {
	return &RatingGormRepository{db: db}
}

func (r *RatingGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &barber, nil
}

func (r *RatingGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &client, nil
}

func (r *RatingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &ap, nil
}

func (r *RatingGormRepository) CreateRating(
	ctx context.Context,
	rating *models.Rating,
) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *RatingGormRepository) ListRatingsByBarber(
	ctx context.Context,
	barberID uint,
) ([]models.Rating, error) {

	var ratings []models.Rating
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, err
	}

	return ratings, nil
}

func (r *RatingGormRepository) HasRatingForAppointment(
	ctx context.Context,
	appointmentID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("appointment_id = ?", appointmentID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

var _ domain.Repository = (*RatingGormRepository)(nil)
