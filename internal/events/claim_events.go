package events

import "time"

const ClaimLifecycleTopic = "benefits.claim.lifecycle.v1"

type ClaimSubmittedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	ClaimID    string    `json:"claim_id"`
	EmployeeID string    `json:"employee_id"`
	CompanyID  string    `json:"company_id"`
	ClaimType  string    `json:"claim_type"`
	Amount     float64   `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ClaimReviewedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	ClaimID    string    `json:"claim_id"`
	CompanyID  string    `json:"company_id"`
	Status     string    `json:"status"`
	ReviewedBy string    `json:"reviewed_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
