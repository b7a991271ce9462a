package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/employee"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// WorkingHoursHandler serves an employee's weekly schedule on its own.
type WorkingHoursHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewWorkingHoursHandler(db *gorm.DB, audit *audit.Dispatcher) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db, audit: audit}
}

type WorkingHoursUpdateRequest struct {
	Days []ScheduleEntry `json:"days" binding:"dive"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	if !h.exists(c) {
		return
	}

	var hours []models.WorkSchedule
	if err := h.db.WithContext(c.Request.Context()).
		Where("employee_id = ?", c.Param("id")).
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {
		fail(c, err, "failed_to_get_working_hours")
		return
	}

	httpresp.List(c, hours)
}

// Update replaces the whole week. Days left out become days off.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	if !h.exists(c) {
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	schedule := toSchedule(req.Days)
	if err := employee.ValidateSchedule(schedule); err != nil {
		fail(c, err, "")
		return
	}

	id := c.Param("id")
	if err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		return replaceSchedule(tx, id, schedule)
	}); err != nil {
		fail(c, err, "failed_to_save_working_hours")
		return
	}

	writeAudit(c, h.audit, "working_hours_updated", "employee", id, map[string]any{"days": len(schedule)})
	httpresp.List(c, schedule)
}

func (h *WorkingHoursHandler) exists(c *gin.Context) bool {
	var count int64
	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.Employee{}).
		Where("id = ?", c.Param("id")).
		Count(&count).Error; err != nil {
		fail(c, err, "failed_to_load_employee")
		return false
	}
	if count == 0 {
		fail(c, notFound(gorm.ErrRecordNotFound, "employee_not_found"), "")
		return false
	}
	return true
}
