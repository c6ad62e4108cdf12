package models

import "time"

// One row per weekday the barber actually works. A missing row means
// the barber is unavailable that day.
type AvailabilityWindow struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"uniqueIndex:ux_availability_barber_weekday" json:"barber_id"`

	Weekday int `gorm:"uniqueIndex:ux_availability_barber_weekday" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
