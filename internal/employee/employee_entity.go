package employee

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyID        uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeCode     string    `gorm:"type:varchar(30);not null"`
	Department       string    `gorm:"type:varchar(100)"`
	Designation      string    `gorm:"type:varchar(100)"`
	DateOfJoining    time.Time `gorm:"type:date"`
	DateOfBirth      time.Time `gorm:"type:date"`
	Phone            string    `gorm:"type:varchar(30)"`
	EmergencyContact string    `gorm:"type:varchar(30)"`
	Status           string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Employee) TableName() string {
	return "employees"
}

// NewEmployeeCode synthesizes the human-readable code: a fixed prefix plus
// a random 8-character uppercase suffix.
func NewEmployeeCode() string {
	return "EMP-" + strings.ToUpper(uuid.NewString()[:8])
}

// DefaultProfile is the record auto-provisioned during employee
// registration, with placeholder personal data until HR fills it in.
func DefaultProfile(userID, companyID uuid.UUID) *Employee {
	return &Employee{
		ID:               uuid.New(),
		UserID:           userID,
		CompanyID:        companyID,
		EmployeeCode:     NewEmployeeCode(),
		Department:       "General",
		Designation:      "Employee",
		DateOfJoining:    time.Now().UTC(),
		DateOfBirth:      time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Phone:            "0000000000",
		EmergencyContact: "0000000000",
		Status:           StatusActive,
	}
}
