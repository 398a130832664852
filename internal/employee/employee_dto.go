package employee

type CreateEmployeeRequest struct {
	UserID           string `json:"user_id" binding:"required,uuid"`
	EmployeeCode     string `json:"employee_code" binding:"required"`
	Department       string `json:"department" binding:"required"`
	Designation      string `json:"designation" binding:"required"`
	DateOfJoining    string `json:"date_of_joining" binding:"required"`
	DateOfBirth      string `json:"date_of_birth" binding:"required"`
	Phone            string `json:"phone" binding:"required"`
	EmergencyContact string `json:"emergency_contact" binding:"required"`
}

// UpdateEmployeeRequest replaces the whole client-settable record; status
// is only flipped through its own field.
type UpdateEmployeeRequest struct {
	EmployeeCode     string `json:"employee_code" binding:"required"`
	Department       string `json:"department" binding:"required"`
	Designation      string `json:"designation" binding:"required"`
	DateOfJoining    string `json:"date_of_joining" binding:"required"`
	DateOfBirth      string `json:"date_of_birth" binding:"required"`
	Phone            string `json:"phone" binding:"required"`
	EmergencyContact string `json:"emergency_contact" binding:"required"`
	Status           string `json:"status" binding:"required,oneof=active inactive"`
}

type EmployeeResponse struct {
	ID               string `json:"id"`
	UserID           string `json:"user_id"`
	CompanyID        string `json:"company_id"`
	EmployeeCode     string `json:"employee_code"`
	Department       string `json:"department"`
	Designation      string `json:"designation"`
	DateOfJoining    string `json:"date_of_joining"`
	DateOfBirth      string `json:"date_of_birth"`
	Phone            string `json:"phone"`
	EmergencyContact string `json:"emergency_contact"`
	Status           string `json:"status"`
}
