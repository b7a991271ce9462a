package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == nil {
		httperr.Unauthorized(c, "user_not_in_context", httperr.Message("unauthorized"))
		return
	}

	var user models.User
	if err := h.db.First(&user, *userID).Error; err != nil {
		httperr.Unauthorized(c, "user_not_found", httperr.Message("unauthorized"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userView(&user)})
}
