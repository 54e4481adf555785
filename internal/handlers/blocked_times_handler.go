package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaclub/booking-api/internal/audit"
	"github.com/navalhaclub/booking-api/internal/config"
	"github.com/navalhaclub/booking-api/internal/domain/schedule"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/middleware"
	"github.com/navalhaclub/booking-api/internal/models"
	"github.com/navalhaclub/booking-api/internal/validators"
)

type BlockedTimesHandler struct {
	db     *gorm.DB
	config *config.Config
	audit  *audit.Dispatcher
}

func NewBlockedTimesHandler(
	db *gorm.DB,
	cfg *config.Config,
	dispatcher *audit.Dispatcher,
) *BlockedTimesHandler {
	return &BlockedTimesHandler{db: db, config: cfg, audit: dispatcher}
}

// O tipo do bloqueio decide qual campo de data vale: recorrente usa
// day_of_week, pontual usa specific_date. Exatamente um dos dois.
type CreateBlockedTimeRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	BlockType      string `json:"block_type" binding:"required"`

	DayOfWeek    *int    `json:"day_of_week"`
	SpecificDate *string `json:"specific_date"` // YYYY-MM-DD

	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`

	Reason string `json:"reason"`
}

func (h *BlockedTimesHandler) List(c *gin.Context) {
	q := h.db.Preload("Professional").Where("is_active = true")

	if proStr := c.Query("professional_id"); proStr != "" {
		q = q.Where("professional_id = ?", proStr)
	}

	var blocks []models.BlockedTime
	if err := q.
		Order("id ASC").
		Find(&blocks).Error; err != nil {

		httperr.Internal(c, "failed_to_list_blocked_times", "Erro ao listar bloqueios.")
		return
	}

	// Com ?date, devolve só os bloqueios que valem naquele dia.
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := parseDate(h.config.Timezone, dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}

		filtered := make([]models.BlockedTime, 0, len(blocks))
		for i := range blocks {
			if schedule.BlockAppliesOn(&blocks[i], date) {
				filtered = append(filtered, blocks[i])
			}
		}
		blocks = filtered
	}

	c.JSON(http.StatusOK, blocks)
}

func (h *BlockedTimesHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	var req CreateBlockedTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start := validators.NormalizeClock(req.StartTime)
	end := validators.NormalizeClock(req.EndTime)

	if !validators.IsClock(start) || !validators.IsClock(end) {
		httperr.BadRequest(c, "invalid_time", "Horário inválido.")
		return
	}
	if schedule.ToMinutes(start) >= schedule.ToMinutes(end) {
		httperr.BadRequest(c, "invalid_window", "Início deve vir antes do fim.")
		return
	}

	var pro models.Professional
	if err := h.db.First(&pro, "id = ?", req.ProfessionalID).Error; err != nil {
		httperr.BadRequest(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	block := models.BlockedTime{
		ProfessionalID: pro.ID,
		BlockType:      req.BlockType,
		StartTime:      start,
		EndTime:        end,
		Reason:         req.Reason,
		IsActive:       true,
	}

	switch req.BlockType {
	case models.BlockTypeRecurring:
		if req.DayOfWeek == nil || req.SpecificDate != nil {
			httperr.BadRequest(c, "invalid_block",
				"Bloqueio recorrente exige day_of_week e não aceita specific_date.")
			return
		}
		if *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
			httperr.BadRequest(c, "invalid_day_of_week", "Dia da semana inválido.")
			return
		}
		block.DayOfWeek = req.DayOfWeek

	case models.BlockTypeSpecific:
		if req.SpecificDate == nil || req.DayOfWeek != nil {
			httperr.BadRequest(c, "invalid_block",
				"Bloqueio pontual exige specific_date e não aceita day_of_week.")
			return
		}
		date, err := parseDate(h.config.Timezone, *req.SpecificDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		block.SpecificDate = &date

	default:
		httperr.BadRequest(c, "invalid_block_type", "Tipo de bloqueio inválido.")
		return
	}

	if err := h.db.Create(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_create_blocked_time", "Erro ao criar bloqueio.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "blocked_time_created",
		Entity:   "blocked_time",
		EntityID: &block.ID,
	})

	c.JSON(http.StatusCreated, block)
}

func (h *BlockedTimesHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)
	id := c.Param("id")

	var block models.BlockedTime
	if err := h.db.First(&block, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "blocked_time_not_found", "Bloqueio não encontrado.")
		return
	}

	if err := h.db.Delete(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_blocked_time", "Erro ao remover bloqueio.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "blocked_time_deleted",
		Entity:   "blocked_time",
		EntityID: &block.ID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
