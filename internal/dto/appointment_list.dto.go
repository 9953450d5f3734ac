package dto

import (
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AppointmentItemDTO struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
}

type AppointmentListDTO struct {
	ID          uint                 `json:"id"`
	Date        string               `json:"date"`
	Time        string               `json:"time"`
	Status      string               `json:"status"`
	ClientID    uint                 `json:"client_id"`
	ServiceName string               `json:"service_name"`
	Items       []AppointmentItemDTO `json:"items"`
	Total       float64              `json:"total"`
	Notes       string               `json:"notes"`
}

func NewAppointmentList(apps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(apps))
	for i := range apps {
		ap := &apps[i]

		items := make([]AppointmentItemDTO, 0, len(ap.Items))
		for _, it := range ap.Items {
			items = append(items, AppointmentItemDTO{
				Name:        it.Name,
				Price:       it.Price,
				DurationMin: it.DurationMin,
			})
		}

		out = append(out, AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			Time:        ap.Time,
			Status:      ap.Status,
			ClientID:    ap.ClientID,
			ServiceName: ap.Service.Name,
			Items:       items,
			Total:       domain.Total(ap),
			Notes:       ap.Notes,
		})
	}
	return out
}
