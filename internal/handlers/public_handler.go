package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/navalhaclub/booking-api/internal/config"
	domain "github.com/navalhaclub/booking-api/internal/domain/appointment"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/httpresp"
	"github.com/navalhaclub/booking-api/internal/middleware"
	"github.com/navalhaclub/booking-api/internal/models"
	"github.com/navalhaclub/booking-api/internal/usecase/appointment"
	"github.com/navalhaclub/booking-api/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db     *gorm.DB
	config *config.Config

	availabilityUC *appointment.GetAvailability
	bookingUC      *appointment.CreateBooking
}

func NewPublicHandler(
	db *gorm.DB,
	cfg *config.Config,
	availabilityUC *appointment.GetAvailability,
	bookingUC *appointment.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		config:         cfg,
		availabilityUC: availabilityUC,
		bookingUC:      bookingUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	ServiceID      uint   `json:"service_id" binding:"required"`
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	Date           string `json:"date" binding:"required"` // YYYY-MM-DD
	Time           string `json:"time" binding:"required"` // HH:mm
	ClientName     string `json:"client_name" binding:"required"`
	ClientPhone    string `json:"client_phone" binding:"required"`
	Notes          string `json:"notes"`
}

type PhoneRequest struct {
	Phone string `json:"phone" binding:"required"`
}

////////////////////////////////////////////////////////
// CATALOG
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Where("active = true")

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListProfessionals(c *gin.Context) {
	var pros []models.Professional
	if err := h.db.
		Where("active = true").
		Order("id ASC").
		Find(&pros).Error; err != nil {

		httperr.Internal(c, "failed_to_list_professionals", "Erro ao listar profissionais.")
		return
	}

	httpresp.List(c, pros)
}

////////////////////////////////////////////////////////
// AVAILABILITY (REUSO TOTAL DO USE CASE)
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e serviço obrigatórios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	var professionalID *uint
	if proStr := c.Query("professional_id"); proStr != "" {
		proID, err := strconv.ParseUint(proStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_professional_id", "Profissional inválido.")
			return
		}
		id := uint(proID)
		professionalID = &id
	}

	date, err := parseDate(h.config.Timezone, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	result, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			Date:           date,
			ServiceID:      uint(serviceID),
			ProfessionalID: professionalID,
		},
	)

	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.BadRequest(c, "service_not_found", "Serviço inválido.")
			return
		}

		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":          dateStr,
		"slots":         result.Slots,
		"businessHours": result.BusinessHours,
		"blockedTimes":  result.BlockedTimes,
		"availability":  result.Appointments,
	})
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsPhone(validators.CleanPhone(req.ClientPhone)) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	ap, err := h.bookingUC.Execute(
		c.Request.Context(),
		appointment.CreateBookingInput{
			ServiceID:      req.ServiceID,
			ProfessionalID: req.ProfessionalID,
			Date:           req.Date,
			Time:           req.Time,
			ClientName:     req.ClientName,
			ClientPhone:    req.ClientPhone,
			Notes:          req.Notes,
		},
	)

	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

////////////////////////////////////////////////////////
// CLIENT IDENTITY (telefone → token de histórico)
////////////////////////////////////////////////////////

func (h *PublicHandler) CheckPhone(c *gin.Context) {
	var req PhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Telefone obrigatório.")
		return
	}

	phone := validators.CleanPhone(req.Phone)
	if !validators.IsPhone(phone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	var last models.Appointment
	err := h.db.
		Where("client_phone = ?", phone).
		Order("created_at DESC").
		First(&last).Error

	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusOK, gin.H{"exists": false})
		return
	}
	if err != nil {
		httperr.Internal(c, "check_phone_failed", "Erro ao consultar telefone.")
		return
	}

	token, err := h.clientToken(phone)
	if err != nil {
		httperr.Internal(c, "token_failed", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"exists":      true,
		"client_name": last.ClientName,
		"token":       token,
	})
}

func (h *PublicHandler) MyAppointments(c *gin.Context) {
	phone := c.MustGet(middleware.ContextClientPhone).(string)

	var appointments []models.Appointment
	if err := h.db.
		Preload("Service").
		Preload("Professional").
		Where("client_phone = ?", phone).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error; err != nil {

		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, appointments)
}

////////////////////////////////////////////////////////
// SUBSCRIPTIONS
////////////////////////////////////////////////////////

func (h *PublicHandler) CheckSubscriptions(c *gin.Context) {
	var req PhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Telefone obrigatório.")
		return
	}

	phone := validators.CleanPhone(req.Phone)
	if !validators.IsPhone(phone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	var subs []models.Subscription
	if err := h.db.
		Preload("Service").
		Where("client_phone = ? AND active = true", phone).
		Order("expires_at DESC").
		Find(&subs).Error; err != nil {

		httperr.Internal(c, "failed_to_check_subscriptions", "Erro ao consultar assinaturas.")
		return
	}

	now := time.Now()

	active := make([]models.Subscription, 0, len(subs))
	expired := make([]models.Subscription, 0)
	for _, s := range subs {
		if s.ExpiredAt(now) {
			expired = append(expired, s)
			continue
		}
		active = append(active, s)
	}

	c.JSON(http.StatusOK, gin.H{
		"active":  active,
		"expired": expired,
	})
}

// --------- Client JWT ---------

func (h *PublicHandler) clientToken(phone string) (string, error) {
	claims := jwt.MapClaims{
		"phone": phone,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
