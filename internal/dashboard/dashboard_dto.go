package dashboard

type StatsResponse struct {
	EmployeeCount       int64   `json:"employee_count"`
	TotalClaims         int     `json:"total_claims"`
	PendingClaims       int     `json:"pending_claims"`
	ApprovedClaims      int     `json:"approved_claims"`
	RejectedClaims      int     `json:"rejected_claims"`
	TotalClaimAmount    float64 `json:"total_claim_amount"`
	ApprovedClaimAmount float64 `json:"approved_claim_amount"`
	TotalPremiums       float64 `json:"total_premiums"`
	TotalPayouts        float64 `json:"total_payouts"`
	NetBalance          float64 `json:"net_balance"`
}
