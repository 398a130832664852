package claim

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StatusSubmitted   = "submitted"
	StatusUnderReview = "under_review"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
)

const (
	TypeMedical  = "medical"
	TypeDental   = "dental"
	TypeVision   = "vision"
	TypeWellness = "wellness"
)

type Claim struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	// CompanyID is denormalized from the employee profile at creation so
	// tenant-scoped list queries never need a join.
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	ClaimType   string  `gorm:"type:varchar(20);not null"`
	Amount      float64 `gorm:"type:numeric(12,2);not null"`
	Description string  `gorm:"type:text"`
	Status      string  `gorm:"type:varchar(20);not null;default:'submitted'"`

	// Documents are opaque references, stored as-is
	Documents datatypes.JSONSlice[string] `gorm:"type:jsonb"`

	SubmissionDate time.Time  `gorm:"not null"`
	ReviewDate     *time.Time
	ReviewerNotes  *string    `gorm:"type:text"`
	ReviewedBy     *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Claim) TableName() string {
	return "claims"
}
