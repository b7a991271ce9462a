package snapshot

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Keys under which the admin UI kept each module's full list.
const (
	KeyAppointments = "salon_appointments"
	KeyEmployees    = "salon_employees"
	KeyServices     = "salon_services"
)

func objectKey(key string) string {
	return "snapshot/" + key + ".json"
}

type appointmentRecord struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Service      string `json:"service"`
	Employee     string `json:"employee"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	EndTime      string `json:"endTime,omitempty"`
	Status       string `json:"status"`
	Note         string `json:"note,omitempty"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

type workScheduleRecord struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type ratingRecord struct {
	ID            string `json:"id"`
	AppointmentID string `json:"appointmentId"`
	CustomerID    string `json:"customerId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	CreatedAt     string `json:"createdAt"`
}

type employeeRecord struct {
	ID                 string               `json:"id"`
	Name               string               `json:"name"`
	Position           string               `json:"position"`
	MaxCustomersPerDay int                  `json:"maxCustomersPerDay"`
	WorkSchedule       []workScheduleRecord `json:"workSchedule"`
	Ratings            []ratingRecord       `json:"ratings"`
	AverageRating      float64              `json:"averageRating"`
	CreatedAt          string               `json:"createdAt"`
	UpdatedAt          string               `json:"updatedAt"`
}

type serviceRecord struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// parseStamp accepts the ISO strings the UI wrote; anything else is "now".
func parseStamp(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}
	return time.Now().UTC()
}

func toAppointmentRecord(ap models.Appointment) appointmentRecord {
	return appointmentRecord{
		ID:           ap.ID,
		CustomerName: ap.CustomerName,
		Service:      ap.ServiceID,
		Employee:     ap.EmployeeID,
		Date:         ap.Date,
		Time:         ap.StartTime,
		EndTime:      ap.EndTime,
		Status:       ap.Status,
		Note:         ap.Note,
		CreatedAt:    stamp(ap.CreatedAt),
		UpdatedAt:    stamp(ap.UpdatedAt),
	}
}

func (r appointmentRecord) model() models.Appointment {
	return models.Appointment{
		BaseModel: models.BaseModel{
			ID:        r.ID,
			CreatedAt: parseStamp(r.CreatedAt),
			UpdatedAt: parseStamp(r.UpdatedAt),
		},
		CustomerName: r.CustomerName,
		ServiceID:    r.Service,
		EmployeeID:   r.Employee,
		Date:         r.Date,
		StartTime:    r.Time,
		EndTime:      r.EndTime,
		Status:       strings.ToLower(strings.TrimSpace(r.Status)),
		Note:         r.Note,
	}
}

func toEmployeeRecord(emp models.Employee) employeeRecord {
	rec := employeeRecord{
		ID:                 emp.ID,
		Name:               emp.Name,
		Position:           emp.Position,
		MaxCustomersPerDay: emp.MaxCustomersPerDay,
		WorkSchedule:       make([]workScheduleRecord, 0, len(emp.WorkSchedule)),
		Ratings:            make([]ratingRecord, 0, len(emp.Ratings)),
		AverageRating:      emp.AverageRating,
		CreatedAt:          stamp(emp.CreatedAt),
		UpdatedAt:          stamp(emp.UpdatedAt),
	}
	for _, ws := range emp.WorkSchedule {
		rec.WorkSchedule = append(rec.WorkSchedule, workScheduleRecord{
			DayOfWeek: ws.DayOfWeek,
			StartTime: ws.StartTime,
			EndTime:   ws.EndTime,
		})
	}
	for _, r := range emp.Ratings {
		rec.Ratings = append(rec.Ratings, ratingRecord{
			ID:            r.ID,
			AppointmentID: r.AppointmentID,
			CustomerID:    r.CustomerID,
			Rating:        r.Rating,
			Comment:       r.Comment,
			CreatedAt:     stamp(r.CreatedAt),
		})
	}
	return rec
}

func (r employeeRecord) model() models.Employee {
	emp := models.Employee{
		BaseModel: models.BaseModel{
			ID:        r.ID,
			CreatedAt: parseStamp(r.CreatedAt),
			UpdatedAt: parseStamp(r.UpdatedAt),
		},
		Name:               r.Name,
		Position:           r.Position,
		MaxCustomersPerDay: r.MaxCustomersPerDay,
		AverageRating:      r.AverageRating,
	}
	for _, ws := range r.WorkSchedule {
		emp.WorkSchedule = append(emp.WorkSchedule, models.WorkSchedule{
			EmployeeID: r.ID,
			DayOfWeek:  ws.DayOfWeek,
			StartTime:  ws.StartTime,
			EndTime:    ws.EndTime,
		})
	}
	for _, rt := range r.Ratings {
		created := parseStamp(rt.CreatedAt)
		emp.Ratings = append(emp.Ratings, models.Rating{
			BaseModel:     models.BaseModel{ID: rt.ID, CreatedAt: created, UpdatedAt: created},
			EmployeeID:    r.ID,
			AppointmentID: rt.AppointmentID,
			CustomerID:    rt.CustomerID,
			Rating:        rt.Rating,
			Comment:       rt.Comment,
		})
	}
	return emp
}

func toServiceRecord(s models.Service) serviceRecord {
	return serviceRecord{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Duration:    s.DurationMin,
		CreatedAt:   stamp(s.CreatedAt),
		UpdatedAt:   stamp(s.UpdatedAt),
	}
}

func (r serviceRecord) model() models.Service {
	return models.Service{
		BaseModel: models.BaseModel{
			ID:        r.ID,
			CreatedAt: parseStamp(r.CreatedAt),
			UpdatedAt: parseStamp(r.UpdatedAt),
		},
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		DurationMin: r.Duration,
	}
}
