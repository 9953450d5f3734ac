package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves the client-facing booking flow.
type PublicHandler struct {
	availability *appointment.GetAvailability
	createBook   *appointment.CreateBooking
}

func NewPublicHandler(
	availability *appointment.GetAvailability,
	createBook *appointment.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		availability: availability,
		createBook:   createBook,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateBookingRequest struct {
	ServiceID            uint   `json:"service_id"`
	AdditionalServiceIDs []uint `json:"additional_service_ids"`
	Date                 string `json:"date"` // YYYY-MM-DD
	Time                 string `json:"time"` // HH:mm
	Notes                string `json:"notes" binding:"max=255"`
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	salonID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_salon_id", "Salão inválido.")
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (YYYY-MM-DD).")
		return
	}

	out, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		SalonID: salonID,
		Date:    date,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, out)
}

////////////////////////////////////////////////////////
// BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	salonID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_salon_id", "Salão inválido.")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createBook.Execute(c.Request.Context(), appointment.CreateBookingInput{
		SalonID:              salonID,
		ServiceID:            req.ServiceID,
		ClientID:             currentUserID(c),
		Date:                 req.Date,
		Time:                 req.Time,
		Notes:                req.Notes,
		AdditionalServiceIDs: req.AdditionalServiceIDs,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, ap)
}
