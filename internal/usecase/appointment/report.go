package appointment

import (
	"context"
	"time"

	domain "github.com/navalhaclub/booking-api/internal/domain/appointment"
)

// ======================================================
// RELATÓRIO (intervalo multi-dia)
// ======================================================

type ServiceBreakdown struct {
	ServiceID uint    `json:"service_id"`
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	Revenue   float64 `json:"revenue"`
}

type ReportSummary struct {
	From string `json:"from"`
	To   string `json:"to"`

	Total     int `json:"total"`
	Scheduled int `json:"scheduled"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`

	// Receita considera apenas atendimentos concluídos, a preço atual
	// do serviço (agendamento não congela preço).
	Revenue float64 `json:"revenue"`

	Services []ServiceBreakdown `json:"services"`
}

type BuildReport struct {
	repo domain.Repository
}

func NewBuildReport(repo domain.Repository) *BuildReport {
	return &BuildReport{repo: repo}
}

func (uc *BuildReport) Execute(
	ctx context.Context,
	from time.Time,
	to time.Time,
) (*ReportSummary, error) {

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	summary := &ReportSummary{
		From: from.Format("2006-01-02"),
		// to é exclusivo; o rótulo mostra o último dia incluído.
		To: to.AddDate(0, 0, -1).Format("2006-01-02"),
	}

	byService := map[uint]*ServiceBreakdown{}
	order := []uint{}

	for _, ap := range appointments {
		summary.Total++

		switch ap.Status {
		case "scheduled":
			summary.Scheduled++
		case "completed":
			summary.Completed++
			summary.Revenue += ap.Service.Price
		case "cancelled":
			summary.Cancelled++
		}

		entry, ok := byService[ap.ServiceID]
		if !ok {
			entry = &ServiceBreakdown{ServiceID: ap.ServiceID, Name: ap.Service.Name}
			byService[ap.ServiceID] = entry
			order = append(order, ap.ServiceID)
		}
		entry.Count++
		if ap.Status == "completed" {
			entry.Revenue += ap.Service.Price
		}
	}

	summary.Services = make([]ServiceBreakdown, 0, len(order))
	for _, id := range order {
		summary.Services = append(summary.Services, *byService[id])
	}

	return summary, nil
}
