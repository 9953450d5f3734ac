package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	ucplan "github.com/BruksfildServices01/salon-scheduler/internal/usecase/plan"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/salon"
)

type SalonHandler struct {
	getSalon   *salon.GetSalon
	setOpen    *salon.SetOpen
	changePlan *salon.ChangePlan
	enforcer   *ucplan.Enforcer
}

func NewSalonHandler(
	getSalon *salon.GetSalon,
	setOpen *salon.SetOpen,
	changePlan *salon.ChangePlan,
	enforcer *ucplan.Enforcer,
) *SalonHandler {
	return &SalonHandler{
		getSalon:   getSalon,
		setOpen:    setOpen,
		changePlan: changePlan,
		enforcer:   enforcer,
	}
}

type SetOpenRequest struct {
	IsOpen *bool `json:"is_open" binding:"required"`
}

type ChangePlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}

func (h *SalonHandler) GetMe(c *gin.Context) {
	s, err := h.getSalon.Execute(c.Request.Context(), currentSalonID(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *SalonHandler) SetOpen(c *gin.Context) {
	var req SetOpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	salonID := currentSalonID(c)
	if err := h.setOpen.Execute(c.Request.Context(), salonID, currentUserID(c), *req.IsOpen); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"salon_id": salonID, "is_open": *req.IsOpen})
}

func (h *SalonHandler) PlanUsage(c *gin.Context) {
	usage, err := h.enforcer.Usage(c.Request.Context(), currentSalonID(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, usage)
}

// ChangePlan is reserved to super admins; the salon comes from the path.
func (h *SalonHandler) ChangePlan(c *gin.Context) {
	salonID, ok := uintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_salon_id", "Salão inválido.")
		return
	}

	var req ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.changePlan.Execute(c.Request.Context(), salonID, currentUserID(c), req.Plan); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}
