package booking

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	// PartnerID is a soft reference. Nothing checks that the partner
	// exists at creation time.
	PartnerID uuid.UUID `gorm:"type:uuid;not null"`

	ServiceType string  `gorm:"type:varchar(30);not null"`
	BookingDate string  `gorm:"type:varchar(10);not null"`
	BookingTime string  `gorm:"type:varchar(5);not null"`
	Status      string  `gorm:"type:varchar(20);not null;default:'scheduled'"`
	Notes       *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Booking) TableName() string {
	return "bookings"
}
