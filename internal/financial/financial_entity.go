package financial

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypePremiumPayment = "premium_payment"
	TypeClaimPayout    = "claim_payout"
)

// Financial is an append-only ledger row. Nothing updates or deletes it
// after creation.
type Financial struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	TransactionType string    `gorm:"type:varchar(20);not null"`
	Amount          float64   `gorm:"type:numeric(14,2);not null"`
	Description     string    `gorm:"type:text"`
	TransactionDate time.Time `gorm:"not null"`
	ReferenceID     *string   `gorm:"type:varchar(64)"`

	CreatedAt time.Time
}

func (Financial) TableName() string {
	return "financials"
}
