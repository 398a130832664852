package booking

type CreateBookingRequest struct {
	PartnerID   string  `json:"partner_id" binding:"required,uuid"`
	ServiceType string  `json:"service_type" binding:"required,oneof=video_consultation elder_care gym mental_health"`
	BookingDate string  `json:"booking_date" binding:"required,datetime=2006-01-02"`
	BookingTime string  `json:"booking_time" binding:"required,datetime=15:04"`
	Notes       *string `json:"notes"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=scheduled completed cancelled"`
}

type BookingResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	PartnerID   string  `json:"partner_id"`
	ServiceType string  `json:"service_type"`
	BookingDate string  `json:"booking_date"`
	BookingTime string  `json:"booking_time"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
}
