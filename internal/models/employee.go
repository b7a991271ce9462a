package models

import "time"

const (
	PositionStylist      = "stylist"
	PositionTechnician   = "technician"
	PositionAssistant    = "assistant"
	PositionReceptionist = "receptionist"
)

type Employee struct {
	BaseModel

	Name               string  `gorm:"size:100;not null" json:"name"`
	Position           string  `gorm:"size:20;not null" json:"position"`
	MaxCustomersPerDay int     `json:"max_customers_per_day"`
	AverageRating      float64 `json:"average_rating"`
	AvatarKey          string  `gorm:"size:255" json:"-"`

	WorkSchedule []WorkSchedule `gorm:"constraint:OnDelete:CASCADE;" json:"work_schedule"`
	Ratings      []Rating       `gorm:"constraint:OnDelete:CASCADE;" json:"ratings"`
}

type WorkSchedule struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	EmployeeID string `gorm:"size:36;index" json:"-"`

	DayOfWeek int    `json:"day_of_week"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Rating struct {
	BaseModel

	EmployeeID    string `gorm:"size:36;index" json:"employee_id"`
	AppointmentID string `gorm:"size:36" json:"appointment_id"`
	CustomerID    string `gorm:"size:36" json:"customer_id"`
	Rating        int    `json:"rating"`
	Comment       string `gorm:"size:500" json:"comment"`
}
