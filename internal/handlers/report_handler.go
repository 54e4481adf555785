package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/navalhaclub/booking-api/internal/config"
	"github.com/navalhaclub/booking-api/internal/httperr"
	"github.com/navalhaclub/booking-api/internal/usecase/appointment"
)

type ReportHandler struct {
	config *config.Config
	report *appointment.BuildReport
}

func NewReportHandler(cfg *config.Config, report *appointment.BuildReport) *ReportHandler {
	return &ReportHandler{config: cfg, report: report}
}

func (h *ReportHandler) Summary(c *gin.Context) {
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

	summary, err := h.report.Execute(c.Request.Context(), from, to)
	if err != nil {
		httperr.Internal(c, "report_failed", "Erro ao gerar relatório.")
		return
	}

	c.JSON(http.StatusOK, summary)
}
