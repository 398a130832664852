package wellness

import (
	"time"

	"github.com/google/uuid"
)

const (
	ServiceVideoConsultation = "video_consultation"
	ServiceElderCare         = "elder_care"
	ServiceGym               = "gym"
	ServiceMentalHealth      = "mental_health"
)

// Partner is a global catalog entry, not scoped to a company.
type Partner struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	ServiceType  string    `gorm:"type:varchar(30);not null;index"`
	Description  string    `gorm:"type:text"`
	ContactEmail string    `gorm:"type:varchar(255);not null"`
	ContactPhone string    `gorm:"type:varchar(30);not null"`
	Availability string    `gorm:"type:varchar(255)"`
	Pricing      string    `gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Partner) TableName() string {
	return "wellness_partners"
}
