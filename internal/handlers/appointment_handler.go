package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/navalhaclub/booking-api/internal/config"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/httpresp"
	"github.com/navalhaclub/booking-api/internal/middleware"
	"github.com/navalhaclub/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	config *config.Config

	bookingUC  *appointment.CreateBooking
	cancelUC   *appointment.CancelAppointment
	completeUC *appointment.CompleteAppointment
	listUC     *appointment.ListAppointmentsByRange
}

func NewAppointmentHandler(
	cfg *config.Config,
	bookingUC *appointment.CreateBooking,
	cancelUC *appointment.CancelAppointment,
	completeUC *appointment.CompleteAppointment,
	listUC *appointment.ListAppointmentsByRange,
) *AppointmentHandler {
	return &AppointmentHandler{
		config:     cfg,
		bookingUC:  bookingUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		listUC:     listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AdminCreateAppointmentRequest struct {
	ServiceID      uint   `json:"service_id" binding:"required"`
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	ClientName     string `json:"client_name" binding:"required"`
	ClientPhone    string `json:"client_phone" binding:"required"`
	Notes          string `json:"notes"`
}

// ======================================================
// LISTAGEM
// ======================================================

// ListByDate devolve o dia inteiro, cancelados inclusive. A agenda do
// painel mostra tudo; quem filtra é o front.
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	from, to, err := parseDateRange(h.config.Timezone, dateStr, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	list, err := h.listUC.Execute(c.Request.Context(), from, to)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, list)
}

func (h *AppointmentHandler) ListByRange(c *gin.Context) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		httperr.BadRequest(c, "missing_range", "Período obrigatório (from, to).")
		return
	}

	from, to, err := parseDateRange(h.config.Timezone, fromStr, toStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_range", "Período inválido.")
		return
	}
	if !from.Before(to) {
		httperr.BadRequest(c, "invalid_range", "Período inválido.")
		return
	}

	list, err := h.listUC.Execute(c.Request.Context(), from, to)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, list)
}

// ======================================================
// CREATE (mesmo guard de conflito do booking público)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	var req AdminCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
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
			AdminID:        &adminID,
		},
	)

	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), adminID, uint(id))
	if err != nil {
		writeStateChangeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), adminID, uint(id))
	if err != nil {
		writeStateChangeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func writeStateChangeError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.Conflict(c, "invalid_state", "Agendamento não está mais ativo.")
	default:
		httperr.Internal(c, "appointment_update_failed", "Erro ao atualizar agendamento.")
	}
}
