package dto

type AppointmentListDTO struct {
	ID               uint    `json:"id"`
	AppointmentDate  string  `json:"appointment_date"`
	AppointmentTime  string  `json:"appointment_time"`
	Status           string  `json:"status"`
	ClientName       string  `json:"client_name"`
	ClientPhone      string  `json:"client_phone"`
	ServiceName      string  `json:"service_name"`
	ServicePrice     float64 `json:"service_price"`
	ProfessionalName string  `json:"professional_name"`
	Notes            string  `json:"notes"`
}
