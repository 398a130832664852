package company

import (
	"time"

	"github.com/google/uuid"
)

const (
	PlanBasic      = "basic"
	PlanPremium    = "premium"
	PlanEnterprise = "enterprise"
)

type Company struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(150);not null"`
	Industry      string    `gorm:"type:varchar(100)"`
	EmployeeCount int       `gorm:"type:int;not null;default:0"`
	ContactEmail  string    `gorm:"type:varchar(255)"`
	ContactPhone  string    `gorm:"type:varchar(30)"`
	Address       string    `gorm:"type:text"`
	PlanType      string    `gorm:"type:varchar(20);not null;default:'basic'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Company) TableName() string {
	return "companies"
}
