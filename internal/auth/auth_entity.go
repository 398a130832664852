package auth

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email     string     `gorm:"type:varchar(255);uniqueIndex:uq_user_email;not null"`
	Password  string     `gorm:"type:varchar(255);not null"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Role      string     `gorm:"type:varchar(30);not null"`
	CompanyID *uuid.UUID `gorm:"type:uuid;index"` // nil for super_admin
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
