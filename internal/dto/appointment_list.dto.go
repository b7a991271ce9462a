package dto

import "time"

// AppointmentListDTO is a table row: names are resolved so the client does
// not need to join against the employee and service lists.
type AppointmentListDTO struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	ServiceID    string    `json:"service_id"`
	ServiceName  string    `json:"service_name"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Status       string    `json:"status"`
	Note         string    `json:"note"`
	CreatedAt    time.Time `json:"created_at"`
}

type AppointmentStatsDTO struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}
