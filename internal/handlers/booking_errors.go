package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/navalhaclub/booking-api/internal/domain/appointment"
	"github.com/navalhaclub/booking-api/internal/httperr"
)

// Mensagem pública de colisão de horário. O front espera exatamente
// este texto no corpo do 409.
const conflictMessage = "Time slot is no longer available"

// writeBookingError traduz os erros do use case de criação para o
// contrato HTTP público. Compartilhado entre booking público e admin.
func writeBookingError(c *gin.Context, err error) {
	if domain.IsConflict(err) {
		c.JSON(http.StatusConflict, gin.H{"error": conflictMessage})
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		switch be.Code {
		case "invalid_date":
			httperr.BadRequest(c, be.Code, "Data inválida.")
		case "invalid_time":
			httperr.BadRequest(c, be.Code, "Horário inválido.")
		case "service_not_found", "service_inactive":
			httperr.BadRequest(c, be.Code, "Serviço indisponível.")
		case "professional_not_found", "professional_inactive":
			httperr.BadRequest(c, be.Code, "Profissional indisponível.")
		default:
			httperr.BadRequest(c, be.Code, "Dados inválidos.")
		}
		return
	}

	httperr.Internal(c, "booking_failed", "Erro ao criar agendamento.")
}
