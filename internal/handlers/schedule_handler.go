package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/salon"
)

type ScheduleHandler struct {
	get    *salon.GetSchedule
	update *salon.UpdateSchedule
}

func NewScheduleHandler(
	get *salon.GetSchedule,
	update *salon.UpdateSchedule,
) *ScheduleHandler {
	return &ScheduleHandler{
		get:    get,
		update: update,
	}
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	out, err := h.get.Execute(c.Request.Context(), currentSalonID(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

// Update replaces the whole weekly schedule and special dates.
func (h *ScheduleHandler) Update(c *gin.Context) {
	var req schedule.Schedule
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.update.Execute(c.Request.Context(), currentSalonID(c), currentUserID(c), req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}
