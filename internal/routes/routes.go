package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/LunaSuiteApps/salon-scheduler/internal/audit"
	"github.com/LunaSuiteApps/salon-scheduler/internal/config"
	"github.com/LunaSuiteApps/salon-scheduler/internal/handlers"
	infraRepo "github.com/LunaSuiteApps/salon-scheduler/internal/infra/repository"
	"github.com/LunaSuiteApps/salon-scheduler/internal/lock"
	"github.com/LunaSuiteApps/salon-scheduler/internal/media"
	"github.com/LunaSuiteApps/salon-scheduler/internal/middleware"
	"github.com/LunaSuiteApps/salon-scheduler/internal/notify"
	ucBooking "github.com/LunaSuiteApps/salon-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	var dayLocker ucBooking.DayLocker = ucBooking.NopLocker{}
	if redisClient != nil {
		dayLocker = lock.New(redisClient)
	}

	var notifier *notify.Dispatcher
	if cfg.NotificationsEnabled() {
		notifier = notify.NewDispatcher(notify.NewWhatsAppSink(cfg))
	}

	mediaStore := media.New(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKING ENGINE
	// ======================================================
	bookUC := ucBooking.NewBookAppointment(bookingRepo, dayLocker, notifier)
	bookPackUC := ucBooking.NewBookPack(bookingRepo, dayLocker, notifier)
	cancelUC := ucBooking.NewCancelAppointment(bookingRepo)
	completeUC := ucBooking.NewCompleteAppointment(bookingRepo)
	markDepositUC := ucBooking.NewMarkDepositPaid(bookingRepo)
	checkAvailUC := ucBooking.NewCheckAvailability(bookingRepo)
	freeSlotsUC := ucBooking.NewFreeSlots(bookingRepo)
	summaryUC := ucBooking.NewGetCustomerSummary(bookingRepo)
	saveServiceUC := ucBooking.NewSaveService(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db)

	businessHoursHandler := handlers.NewBusinessHoursHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, saveServiceUC, auditDispatcher)
	staffHandler := handlers.NewStaffHandler(db)
	customerHandler := handlers.NewCustomerHandler(db, summaryUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		bookUC,
		bookPackUC,
		cancelUC,
		completeUC,
		markDepositUC,
		checkAvailUC,
		auditDispatcher,
	)

	occupationHandler := handlers.NewOccupationHandler(db, auditDispatcher)
	inspirationHandler := handlers.NewInspirationHandler(mediaStore)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		bookUC,
		bookPackUC,
		checkAvailUC,
		freeSlotsUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.CheckAvailability)
			publicAPI.GET("/:slug/free-slots", publicHandler.FreeSlots)
			publicAPI.POST("/:slug/appointments", publicHandler.Book)
			publicAPI.POST("/:slug/packs", publicHandler.BookPack)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/salon", salonHandler.GetMeSalon)
			secured.PATCH("/me/salon",
				middleware.RequireCapability(middleware.CanEditBusinessHours),
				salonHandler.UpdateMeSalon)

			secured.GET("/me/business-hours", businessHoursHandler.Get)
			secured.PUT("/me/business-hours",
				middleware.RequireCapability(middleware.CanEditBusinessHours),
				businessHoursHandler.Update)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services",
				middleware.RequireCapability(middleware.CanEditServices),
				serviceHandler.Create)
			secured.PATCH("/me/services/:id",
				middleware.RequireCapability(middleware.CanEditServices),
				serviceHandler.Update)

			secured.GET("/me/staff", staffHandler.List)
			staffWrite := secured.Group("/me/staff")
			staffWrite.Use(middleware.RequireCapability(middleware.CanManageStaff))
			{
				staffWrite.POST("", staffHandler.Create)
				staffWrite.PATCH("/:id", staffHandler.Update)
				staffWrite.PUT("/:id/working-hours", staffHandler.UpdateHours)
				staffWrite.PUT("/:id/duration-overrides", staffHandler.UpdateOverrides)
			}
			secured.GET("/me/staff/:id/working-hours", staffHandler.GetHours)
			secured.GET("/me/staff/:id/duration-overrides", staffHandler.GetOverrides)

			secured.GET("/me/customers", customerHandler.List)
			secured.GET("/me/customers/:id/summary", customerHandler.Summary)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/availability", appointmentHandler.CheckAvailability)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)

			reservations := secured.Group("/me")
			reservations.Use(middleware.RequireCapability(middleware.CanCreateReservations))
			{
				reservations.POST("/appointments", appointmentHandler.Create)
				reservations.POST("/packs", appointmentHandler.CreatePack)
				reservations.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
				reservations.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
				reservations.PATCH("/appointments/:id/deposit-paid", appointmentHandler.MarkDepositPaid)

				reservations.GET("/occupations", occupationHandler.ListByDate)
				reservations.POST("/occupations", occupationHandler.Create)
				reservations.DELETE("/occupations/:id", occupationHandler.Delete)

				reservations.POST("/inspiration-images", inspirationHandler.Upload)
			}

			secured.GET("/me/audit-logs",
				middleware.RequireCapability(middleware.CanViewAuditLogs),
				auditLogsHandler.List)
		}
	}
}
