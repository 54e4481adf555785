package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/navalhaclub/booking-api/internal/audit"
	"github.com/navalhaclub/booking-api/internal/cache"
	"github.com/navalhaclub/booking-api/internal/domain/schedule"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/middleware"
	"github.com/navalhaclub/booking-api/internal/models"
	"github.com/navalhaclub/booking-api/internal/validators"
)

const (
	businessHoursCacheKey = "business_hours"
	businessHoursCacheTTL = 5 * time.Minute
)

type BusinessHoursHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewBusinessHoursHandler(
	db *gorm.DB,
	c *cache.Cache,
	dispatcher *audit.Dispatcher,
) *BusinessHoursHandler {
	return &BusinessHoursHandler{db: db, cache: c, audit: dispatcher}
}

type BusinessDayConfig struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	IsOpen    bool   `json:"is_open"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type BusinessHoursUpdateRequest struct {
	Days []BusinessDayConfig `json:"days" binding:"required"`
}

func (h *BusinessHoursHandler) Get(c *gin.Context) {
	var hours []models.BusinessHours

	if h.cache.GetJSON(c.Request.Context(), businessHoursCacheKey, &hours) {
		c.JSON(http.StatusOK, hours)
		return
	}

	if err := h.db.
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_business_hours", "Erro ao carregar horários.")
		return
	}

	h.cache.SetJSON(c.Request.Context(), businessHoursCacheKey, hours, businessHoursCacheTTL)

	c.JSON(http.StatusOK, hours)
}

// Update grava a semana inteira num upsert por day_of_week. Horários
// chegam como "HH:MM" ou "HH:MM:SS" e são normalizados para 5 chars.
func (h *BusinessHoursHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	var req BusinessHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	seen := map[int]bool{}
	rows := make([]models.BusinessHours, 0, len(req.Days))

	for _, d := range req.Days {
		if seen[d.DayOfWeek] {
			httperr.BadRequest(c, "duplicate_day", "Dia da semana repetido.")
			return
		}
		seen[d.DayOfWeek] = true

		row := models.BusinessHours{
			DayOfWeek: d.DayOfWeek,
			IsOpen:    d.IsOpen,
			OpenTime:  validators.NormalizeClock(d.OpenTime),
			CloseTime: validators.NormalizeClock(d.CloseTime),
		}

		if row.IsOpen {
			if !validators.IsClock(row.OpenTime) || !validators.IsClock(row.CloseTime) {
				httperr.BadRequest(c, "invalid_time", "Horário inválido.")
				return
			}
			if schedule.ToMinutes(row.OpenTime) >= schedule.ToMinutes(row.CloseTime) {
				httperr.BadRequest(c, "invalid_window", "Abertura deve vir antes do fechamento.")
				return
			}
		}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		httperr.BadRequest(c, "empty_week", "Nenhum dia informado.")
		return
	}

	if err := h.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "day_of_week"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"is_open", "open_time", "close_time", "updated_at",
		}),
	}).Create(&rows).Error; err != nil {

		httperr.Internal(c, "failed_to_save_business_hours", "Erro ao salvar horários.")
		return
	}

	h.cache.Delete(c.Request.Context(), businessHoursCacheKey)

	h.audit.Dispatch(audit.Event{
		AdminID: &adminID,
		Action:  "business_hours_updated",
		Entity:  "business_hours",
		Metadata: map[string]any{"days": len(rows)},
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
