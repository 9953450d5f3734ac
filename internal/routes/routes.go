package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/plan"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	ucPlan "github.com/BruksfildServices01/salon-scheduler/internal/usecase/plan"
	ucSalon "github.com/BruksfildServices01/salon-scheduler/internal/usecase/salon"
)

// Background holds the long-lived workers owned by main.
type Background struct {
	Audit    *audit.Dispatcher
	Notifier domain.Notifier
}

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	bg Background,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.CORSMiddleware(cfg.CORSAllowedOrigins),
	)

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	salonRepo := infraRepo.NewSalonGormRepository(db)
	auditLogger := audit.New(db)

	settings := domain.Settings{
		SlotStep: cfg.SlotStepMinutes,
		LeadTime: cfg.BookingLead(),
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	enforcer := ucPlan.NewEnforcer(salonRepo, plan.StaticRegistry{}, bg.Audit)

	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, settings)
	createBookingUC := ucAppointment.NewCreateBooking(
		appointmentRepo,
		bg.Audit,
		bg.Notifier,
		enforcer,
		settings,
	)

	confirmUC := ucAppointment.NewConfirmAppointment(appointmentRepo, bg.Audit, bg.Notifier)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, bg.Audit, bg.Notifier)
	completeUC := ucAppointment.NewCompleteAppointment(appointmentRepo, bg.Audit, bg.Notifier)

	listByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)
	listByMonthUC := ucAppointment.NewListAppointmentsByMonth(appointmentRepo)

	getSalonUC := ucSalon.NewGetSalon(salonRepo)
	setOpenUC := ucSalon.NewSetOpen(salonRepo, enforcer, bg.Audit)
	changePlanUC := ucSalon.NewChangePlan(salonRepo, bg.Audit)
	getScheduleUC := ucSalon.NewGetSchedule(salonRepo)
	updateScheduleUC := ucSalon.NewUpdateSchedule(salonRepo, bg.Audit)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(availabilityUC, createBookingUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		confirmUC,
		cancelUC,
		completeUC,
		listByDateUC,
		listByMonthUC,
	)
	salonHandler := handlers.NewSalonHandler(getSalonUC, setOpenUC, changePlanUC, enforcer)
	scheduleHandler := handlers.NewScheduleHandler(getScheduleUC, updateScheduleUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	// ======================================================
	// 🔧 INFRA ENDPOINTS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		// ------------------------------
		// 🌐 CLIENTE
		// ------------------------------
		client := api.Group("/salons")
		client.Use(middleware.RequireRole(middleware.RoleClient))
		{
			client.GET("/:id/availability", publicHandler.Availability)
			client.POST("/:id/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// 🔐 ADMIN DO SALÃO
		// ------------------------------
		me := api.Group("/me")
		me.Use(
			middleware.RequireRole(middleware.RoleAdmin),
			middleware.RequireSalon(),
		)
		{
			me.GET("/salon", salonHandler.GetMe)
			me.PATCH("/salon/open", salonHandler.SetOpen)
			me.GET("/plan/usage", salonHandler.PlanUsage)

			me.GET("/schedule", scheduleHandler.Get)
			me.PUT("/schedule", scheduleHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			me.GET("/appointments", appointmentHandler.ListByDate)
			me.GET("/appointments/month", appointmentHandler.ListByMonth)
			me.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			me.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			me.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			me.GET("/audit-logs", auditLogsHandler.List)
		}

		// ------------------------------
		// 🛡️ SUPERADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.RequireRole(middleware.RoleSuperAdmin))
		{
			admin.PATCH("/salons/:id/plan", salonHandler.ChangePlan)
		}
	}
}
