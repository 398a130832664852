package claim

type CreateClaimRequest struct {
	ClaimType   string   `json:"claim_type" binding:"required,oneof=medical dental vision wellness"`
	Amount      float64  `json:"amount" binding:"required,gt=0"`
	Description string   `json:"description" binding:"required"`
	Documents   []string `json:"documents"`
}

// ReviewClaimRequest is the only way a claim changes after submission.
// Amount and type are immutable.
type ReviewClaimRequest struct {
	Status        string  `json:"status" binding:"required,oneof=submitted under_review approved rejected"`
	ReviewerNotes *string `json:"reviewer_notes"`
}

type ClaimResponse struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employee_id"`
	CompanyID      string   `json:"company_id"`
	ClaimType      string   `json:"claim_type"`
	Amount         float64  `json:"amount"`
	Description    string   `json:"description"`
	Status         string   `json:"status"`
	Documents      []string `json:"documents"`
	SubmissionDate string   `json:"submission_date"`
	ReviewDate     *string  `json:"review_date,omitempty"`
	ReviewerNotes  *string  `json:"reviewer_notes,omitempty"`
	ReviewedBy     *string  `json:"reviewed_by,omitempty"`
}
