package models

import "time"

type Rating struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Optional link to the completed appointment that justified the rating.
	AppointmentID *uint `gorm:"uniqueIndex" json:"appointment_id"`

	Score   int    `gorm:"not null" json:"score"`
	Comment string `gorm:"size:500" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
