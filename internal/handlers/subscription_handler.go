package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaclub/booking-api/internal/audit"
	"github.com/navalhaclub/booking-api/internal/config"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/middleware"
	"github.com/navalhaclub/booking-api/internal/models"
	"github.com/navalhaclub/booking-api/internal/validators"
)

type SubscriptionHandler struct {
	db     *gorm.DB
	config *config.Config
	audit  *audit.Dispatcher
}

func NewSubscriptionHandler(
	db *gorm.DB,
	cfg *config.Config,
	dispatcher *audit.Dispatcher,
) *SubscriptionHandler {
	return &SubscriptionHandler{db: db, config: cfg, audit: dispatcher}
}

type CreateSubscriptionRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	StartsAt    string `json:"starts_at" binding:"required"`  // YYYY-MM-DD
	ExpiresAt   string `json:"expires_at" binding:"required"` // YYYY-MM-DD
}

func (h *SubscriptionHandler) List(c *gin.Context) {
	q := h.db.Preload("Service")

	if phone := validators.CleanPhone(c.Query("phone")); phone != "" {
		q = q.Where("client_phone = ?", phone)
	}
	if c.Query("active") == "true" {
		q = q.Where("active = true")
	}

	var subs []models.Subscription
	if err := q.
		Order("created_at DESC").
		Find(&subs).Error; err != nil {

		httperr.Internal(c, "failed_to_list_subscriptions", "Erro ao listar assinaturas.")
		return
	}

	c.JSON(http.StatusOK, subs)
}

func (h *SubscriptionHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	phone := validators.CleanPhone(req.ClientPhone)
	if !validators.IsPhone(phone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	startsAt, err := parseDate(h.config.Timezone, req.StartsAt)
	if err != nil {
		httperr.BadRequest(c, "invalid_starts_at", "Data de início inválida.")
		return
	}

	expiresAt, err := parseDate(h.config.Timezone, req.ExpiresAt)
	if err != nil {
		httperr.BadRequest(c, "invalid_expires_at", "Data de expiração inválida.")
		return
	}

	if !startsAt.Before(expiresAt) {
		httperr.BadRequest(c, "invalid_period", "Início deve vir antes da expiração.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, "id = ?", req.ServiceID).Error; err != nil {
		httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
		return
	}
	if !svc.IsSubscription {
		httperr.BadRequest(c, "not_subscription_service", "Serviço não é de assinatura.")
		return
	}

	sub := models.Subscription{
		ClientName:  req.ClientName,
		ClientPhone: phone,
		ServiceID:   svc.ID,
		StartsAt:    startsAt,
		ExpiresAt:   expiresAt.Add(24*time.Hour - time.Second), // fim do dia
		Active:      true,
	}

	if err := h.db.Create(&sub).Error; err != nil {
		httperr.Internal(c, "failed_to_create_subscription", "Erro ao criar assinatura.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "subscription_created",
		Entity:   "subscription",
		EntityID: &sub.ID,
	})

	c.JSON(http.StatusCreated, sub)
}

func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)
	id := c.Param("id")

	var sub models.Subscription
	if err := h.db.First(&sub, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "subscription_not_found", "Assinatura não encontrada.")
		return
	}

	if !sub.Active {
		httperr.Conflict(c, "already_cancelled", "Assinatura já cancelada.")
		return
	}

	sub.Active = false
	if err := h.db.Save(&sub).Error; err != nil {
		httperr.Internal(c, "failed_to_cancel_subscription", "Erro ao cancelar assinatura.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  &adminID,
		Action:   "subscription_cancelled",
		Entity:   "subscription",
		EntityID: &sub.ID,
	})

	c.JSON(http.StatusOK, sub)
}
