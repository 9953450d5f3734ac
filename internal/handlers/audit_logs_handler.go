package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

// List supports ?action=&entity=&from=YYYY-MM-DD&to=YYYY-MM-DD&page=&limit=.
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	// --------------------------------------------------
	// Período (dias inteiros, UTC)
	// --------------------------------------------------
	if v := c.Query("from"); v != "" {
		from, err := schedule.ParseDate(v, time.UTC)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "Data inicial inválida.")
			return
		}
		f.From = from
	}
	if v := c.Query("to"); v != "" {
		to, err := schedule.ParseDate(v, time.UTC)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "Data final inválida.")
			return
		}
		_, f.To = timezone.DayBounds(to)
	}

	logs, total, used, err := h.logs.List(c.Request.Context(), currentSalonID(c), f)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Page(c, logs, used.Page, used.Limit, total)
}
