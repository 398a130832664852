package wellness

type CreatePartnerRequest struct {
	Name         string `json:"name" binding:"required"`
	ServiceType  string `json:"service_type" binding:"required,oneof=video_consultation elder_care gym mental_health"`
	Description  string `json:"description" binding:"required"`
	ContactEmail string `json:"contact_email" binding:"required,email"`
	ContactPhone string `json:"contact_phone" binding:"required"`
	Availability string `json:"availability" binding:"required"`
	Pricing      string `json:"pricing" binding:"required"`
}

// UpdatePartnerRequest replaces the whole record.
type UpdatePartnerRequest struct {
	Name         string `json:"name" binding:"required"`
	ServiceType  string `json:"service_type" binding:"required,oneof=video_consultation elder_care gym mental_health"`
	Description  string `json:"description" binding:"required"`
	ContactEmail string `json:"contact_email" binding:"required,email"`
	ContactPhone string `json:"contact_phone" binding:"required"`
	Availability string `json:"availability" binding:"required"`
	Pricing      string `json:"pricing" binding:"required"`
}

type PartnerResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ServiceType  string `json:"service_type"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Availability string `json:"availability"`
	Pricing      string `json:"pricing"`
}
