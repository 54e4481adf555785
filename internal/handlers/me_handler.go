package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/middleware"
	"github.com/navalhaclub/booking-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	var admin models.AdminUser
	if err := h.db.First(&admin, adminID).Error; err != nil {
		httperr.Internal(c, "admin_not_found", "Admin não encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    admin.ID,
		"name":  admin.Name,
		"phone": admin.Phone,
	})
}
