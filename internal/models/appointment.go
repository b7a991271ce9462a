package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

type Appointment struct {
	BaseModel

	CustomerName string `gorm:"size:100;not null" json:"customer_name"`

	ServiceID string   `gorm:"size:36;index" json:"service_id"`
	Service   *Service `json:"service,omitempty"`

	EmployeeID string    `gorm:"size:36;index:idx_appointments_employee_date,priority:1" json:"employee_id"`
	Employee   *Employee `json:"employee,omitempty"`

	// Date is a calendar day (YYYY-MM-DD); times are zero-padded HH:mm.
	Date      string `gorm:"size:10;index:idx_appointments_employee_date,priority:2" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`
	Note   string `gorm:"size:255" json:"note"`

	// SlotKey is employee|date|time while the appointment holds its slot and
	// NULL once cancelled. The unique index keeps one live booking per slot.
	SlotKey *string `gorm:"size:64;uniqueIndex" json:"-"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
}

func SlotKeyFor(employeeID, date, startTime string) string {
	return employeeID + "|" + date + "|" + startTime
}

func (a *Appointment) HoldsSlot() bool {
	return a.Status != AppointmentCancelled
}

func (a *Appointment) BeforeSave(tx *gorm.DB) error {
	if a.HoldsSlot() {
		key := SlotKeyFor(a.EmployeeID, a.Date, a.StartTime)
		a.SlotKey = &key
	} else {
		a.SlotKey = nil
	}
	return nil
}
