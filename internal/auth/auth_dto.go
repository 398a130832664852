package auth

type RegisterRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	Name      string  `json:"name" binding:"required"`
	Role      string  `json:"role" binding:"required,oneof=super_admin company_admin hr_manager employee"`
	CompanyID *string `json:"company_id" binding:"omitempty,uuid"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	CompanyID *string `json:"company_id,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}
