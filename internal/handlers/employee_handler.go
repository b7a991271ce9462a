package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/blob"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/employee"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/media"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucappointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type EmployeeHandler struct {
	db           *gorm.DB
	audit        *audit.Dispatcher
	blobs        blob.Store
	availability *ucappointment.GetAvailability
}

func NewEmployeeHandler(
	db *gorm.DB,
	audit *audit.Dispatcher,
	blobs blob.Store,
	availability *ucappointment.GetAvailability,
) *EmployeeHandler {
	return &EmployeeHandler{
		db:           db,
		audit:        audit,
		blobs:        blobs,
		availability: availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ScheduleEntry struct {
	DayOfWeek int    `json:"day_of_week" binding:"weekday"`
	StartTime string `json:"start_time" binding:"required,hhmm"`
	EndTime   string `json:"end_time" binding:"required,hhmm"`
}

type EmployeeRequest struct {
	Name               string          `json:"name" binding:"required,max=100"`
	Position           string          `json:"position" binding:"required"`
	MaxCustomersPerDay int             `json:"max_customers_per_day" binding:"gte=0"`
	WorkSchedule       []ScheduleEntry `json:"work_schedule" binding:"dive"`
}

type RatingRequest struct {
	AppointmentID string `json:"appointment_id"`
	CustomerID    string `json:"customer_id"`
	Rating        int    `json:"rating" binding:"required"`
	Comment       string `json:"comment" binding:"max=500"`
}

func toSchedule(entries []ScheduleEntry) []models.WorkSchedule {
	out := make([]models.WorkSchedule, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.WorkSchedule{
			DayOfWeek: e.DayOfWeek,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
		})
	}
	return out
}

func (r EmployeeRequest) validate() ([]models.WorkSchedule, error) {
	if !employee.ValidPosition(r.Position) {
		return nil, httperr.ErrBusiness("invalid_position")
	}
	schedule := toSchedule(r.WorkSchedule)
	if err := employee.ValidateSchedule(schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// ======================================================
// LIST / GET
// ======================================================

func (h *EmployeeHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).
		Preload("WorkSchedule").
		Preload("Ratings")

	if pos := c.Query("position"); pos != "" {
		q = q.Where("position = ?", pos)
	}
	if query := strings.TrimSpace(c.Query("query")); query != "" {
		q = q.Where("LOWER(name) LIKE ? ESCAPE '!'", dbpkg.ContainsPattern(query))
	}

	var employees []models.Employee
	if err := q.Order("name ASC").Find(&employees).Error; err != nil {
		fail(c, err, "failed_to_list_employees")
		return
	}

	httpresp.List(c, employees)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	emp, ok := h.load(c, true)
	if !ok {
		return
	}
	httpresp.OK(c, emp)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	schedule, err := req.validate()
	if err != nil {
		fail(c, err, "")
		return
	}

	emp := models.Employee{
		Name:               strings.TrimSpace(req.Name),
		Position:           req.Position,
		MaxCustomersPerDay: req.MaxCustomersPerDay,
		WorkSchedule:       schedule,
		Ratings:            []models.Rating{},
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&emp).Error; err != nil {
		fail(c, err, "failed_to_create_employee")
		return
	}

	writeAudit(c, h.audit, "employee_created", "employee", emp.ID, nil)
	httpresp.Created(c, emp)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	emp, ok := h.load(c, false)
	if !ok {
		return
	}

	var req EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	schedule, err := req.validate()
	if err != nil {
		fail(c, err, "")
		return
	}

	emp.Name = strings.TrimSpace(req.Name)
	emp.Position = req.Position
	emp.MaxCustomersPerDay = req.MaxCustomersPerDay

	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(emp).Error; err != nil {
			return err
		}
		return replaceSchedule(tx, emp.ID, schedule)
	})
	if err != nil {
		fail(c, err, "failed_to_update_employee")
		return
	}

	writeAudit(c, h.audit, "employee_updated", "employee", emp.ID, nil)

	updated, ok := h.load(c, true)
	if !ok {
		return
	}
	httpresp.OK(c, updated)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&models.Employee{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("employee_not_found")
		}
		if err := tx.Where("employee_id = ?", id).Delete(&models.WorkSchedule{}).Error; err != nil {
			return err
		}
		return tx.Where("employee_id = ?", id).Delete(&models.Rating{}).Error
	})
	if err != nil {
		fail(c, err, "failed_to_delete_employee")
		return
	}

	writeAudit(c, h.audit, "employee_deleted", "employee", id, nil)
	httpresp.NoContent(c)
}

// ======================================================
// RATINGS
// ======================================================

func (h *EmployeeHandler) AddRating(c *gin.Context) {
	emp, ok := h.load(c, false)
	if !ok {
		return
	}

	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if err := employee.ValidRating(req.Rating); err != nil {
		fail(c, err, "")
		return
	}

	rating := models.Rating{
		EmployeeID:    emp.ID,
		AppointmentID: req.AppointmentID,
		CustomerID:    req.CustomerID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}

	var average float64
	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rating).Error; err != nil {
			return err
		}

		var all []models.Rating
		if err := tx.Where("employee_id = ?", emp.ID).Find(&all).Error; err != nil {
			return err
		}
		average = employee.AverageRating(all)

		return tx.Model(&models.Employee{}).
			Where("id = ?", emp.ID).
			Update("average_rating", average).Error
	})
	if err != nil {
		fail(c, err, "failed_to_add_rating")
		return
	}

	writeAudit(c, h.audit, "employee_rated", "employee", emp.ID, map[string]any{"rating": req.Rating})
	httpresp.Created(c, gin.H{
		"rating":         rating,
		"average_rating": average,
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *EmployeeHandler) Availability(c *gin.Context) {
	av, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		EmployeeID: c.Param("id"),
		Date:       c.Query("date"),
	})
	if err != nil {
		fail(c, err, "failed_to_get_availability")
		return
	}
	httpresp.OK(c, av)
}

// ======================================================
// AVATAR
// ======================================================

func (h *EmployeeHandler) UploadAvatar(c *gin.Context) {
	emp, ok := h.load(c, false)
	if !ok {
		return
	}

	fh, err := c.FormFile("avatar")
	if err != nil {
		badRequest(c)
		return
	}
	f, err := fh.Open()
	if err != nil {
		badRequest(c)
		return
	}
	defer f.Close()

	data, err := media.EncodeAvatar(f)
	if err != nil {
		fail(c, err, "failed_to_encode_avatar")
		return
	}

	key := media.AvatarKey(emp.ID)
	if err := h.blobs.Put(c.Request.Context(), key, data, media.AvatarContentType); err != nil {
		fail(c, err, "failed_to_store_avatar")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.Employee{}).
		Where("id = ?", emp.ID).
		Update("avatar_key", key).Error; err != nil {
		fail(c, err, "failed_to_update_employee")
		return
	}

	writeAudit(c, h.audit, "employee_avatar_updated", "employee", emp.ID, nil)
	httpresp.OK(c, gin.H{"avatar_url": "/api/employees/" + emp.ID + "/avatar"})
}

func (h *EmployeeHandler) Avatar(c *gin.Context) {
	emp, ok := h.load(c, false)
	if !ok {
		return
	}
	if emp.AvatarKey == "" {
		fail(c, httperr.ErrBusiness("avatar_not_found"), "")
		return
	}

	data, err := h.blobs.Get(c.Request.Context(), emp.AvatarKey)
	if errors.Is(err, blob.ErrNotFound) {
		fail(c, httperr.ErrBusiness("avatar_not_found"), "")
		return
	}
	if err != nil {
		fail(c, err, "failed_to_load_avatar")
		return
	}

	c.Header("Cache-Control", "private, max-age=300")
	c.Data(http.StatusOK, media.AvatarContentType, data)
}

// ======================================================
// HELPERS
// ======================================================

func (h *EmployeeHandler) load(c *gin.Context, withRelations bool) (*models.Employee, bool) {
	q := h.db.WithContext(c.Request.Context())
	if withRelations {
		q = q.Preload("WorkSchedule", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week ASC")
		}).Preload("Ratings")
	}

	var emp models.Employee
	if err := q.Where("id = ?", c.Param("id")).First(&emp).Error; err != nil {
		fail(c, notFound(err, "employee_not_found"), "failed_to_load_employee")
		return nil, false
	}
	return &emp, true
}

func replaceSchedule(tx *gorm.DB, employeeID string, schedule []models.WorkSchedule) error {
	if err := tx.Where("employee_id = ?", employeeID).Delete(&models.WorkSchedule{}).Error; err != nil {
		return err
	}
	if len(schedule) == 0 {
		return nil
	}
	for i := range schedule {
		schedule[i].EmployeeID = employeeID
	}
	return tx.Create(&schedule).Error
}
