package financial

type CreateFinancialRequest struct {
	TransactionType string  `json:"transaction_type" binding:"required,oneof=premium_payment claim_payout"`
	Amount          float64 `json:"amount" binding:"required,gt=0"`
	Description     string  `json:"description" binding:"required"`
	ReferenceID     *string `json:"reference_id"`
}

type FinancialResponse struct {
	ID              string  `json:"id"`
	CompanyID       string  `json:"company_id"`
	TransactionType string  `json:"transaction_type"`
	Amount          float64 `json:"amount"`
	Description     string  `json:"description"`
	TransactionDate string  `json:"transaction_date"`
	ReferenceID     *string `json:"reference_id,omitempty"`
}
