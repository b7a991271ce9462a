package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucappointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentUseCases struct {
	Create       *ucappointment.CreateAppointment
	Update       *ucappointment.UpdateAppointment
	ChangeStatus *ucappointment.ChangeAppointmentStatus
	Delete       *ucappointment.DeleteAppointment
	List         *ucappointment.ListAppointments
	Stats        *ucappointment.AppointmentStats
}

type AppointmentHandler struct {
	repo domain.Repository
	uc   AppointmentUseCases
}

func NewAppointmentHandler(repo domain.Repository, uc AppointmentUseCases) *AppointmentHandler {
	return &AppointmentHandler{repo: repo, uc: uc}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	CustomerName string `json:"customer_name" binding:"required,max=100"`
	ServiceID    string `json:"service_id" binding:"required"`
	EmployeeID   string `json:"employee_id" binding:"required"`
	Date         string `json:"date" binding:"required,civildate"`
	Time         string `json:"time" binding:"required,hhmm"`
	Note         string `json:"note" binding:"max=255"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	ap, err := h.uc.Create.Execute(c.Request.Context(), ucappointment.CreateAppointmentInput{
		UserID:       middleware.UserID(c),
		CustomerName: req.CustomerName,
		ServiceID:    req.ServiceID,
		EmployeeID:   req.EmployeeID,
		Date:         req.Date,
		StartTime:    req.Time,
		Note:         req.Note,
	})
	if err != nil {
		fail(c, err, "failed_to_create_appointment")
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	ap, err := h.uc.Update.Execute(c.Request.Context(), ucappointment.UpdateAppointmentInput{
		ID:           c.Param("id"),
		UserID:       middleware.UserID(c),
		CustomerName: req.CustomerName,
		ServiceID:    req.ServiceID,
		EmployeeID:   req.EmployeeID,
		Date:         req.Date,
		StartTime:    req.Time,
		Note:         req.Note,
	})
	if err != nil {
		fail(c, err, "failed_to_update_appointment")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATUS / DELETE
// ======================================================

func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	ap, err := h.uc.ChangeStatus.Execute(
		c.Request.Context(),
		c.Param("id"),
		req.Status,
		middleware.UserID(c),
	)
	if err != nil {
		fail(c, err, "failed_to_change_status")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.uc.Delete.Execute(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		fail(c, err, "failed_to_delete_appointment")
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.repo.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, notFound(err, "appointment_not_found"), "failed_to_load_appointment")
		return
	}
	httpresp.OK(c, ap)
}

// List accepts status, employee_id, service_id, from, to, query and
// sort=asc|desc.
func (h *AppointmentHandler) List(c *gin.Context) {
	rows, err := h.uc.List.Execute(c.Request.Context(), domain.ListFilter{
		Status:     c.Query("status"),
		EmployeeID: c.Query("employee_id"),
		ServiceID:  c.Query("service_id"),
		DateFrom:   c.Query("from"),
		DateTo:     c.Query("to"),
		Query:      c.Query("query"),
		Sort:       domain.SortOrder(c.Query("sort")),
	})
	if err != nil {
		fail(c, err, "failed_to_list_appointments")
		return
	}

	httpresp.List(c, rows)
}

func (h *AppointmentHandler) Stats(c *gin.Context) {
	stats, err := h.uc.Stats.Execute(c.Request.Context())
	if err != nil {
		fail(c, err, "failed_to_count_appointments")
		return
	}
	httpresp.OK(c, stats)
}
