package company

type CreateCompanyRequest struct {
	Name          string `json:"name" binding:"required"`
	Industry      string `json:"industry" binding:"required"`
	EmployeeCount int    `json:"employee_count" binding:"required,min=1"`
	ContactEmail  string `json:"contact_email" binding:"required,email"`
	ContactPhone  string `json:"contact_phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	PlanType      string `json:"plan_type" binding:"required,oneof=basic premium enterprise"`
}

type CompanyResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Industry      string `json:"industry"`
	EmployeeCount int    `json:"employee_count"`
	ContactEmail  string `json:"contact_email"`
	ContactPhone  string `json:"contact_phone"`
	Address       string `json:"address"`
	PlanType      string `json:"plan_type"`
	CreatedAt     string `json:"created_at"`
}
