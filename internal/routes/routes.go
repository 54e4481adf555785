package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/navalhaclub/booking-api/internal/audit"
	"github.com/navalhaclub/booking-api/internal/cache"
	"github.com/navalhaclub/booking-api/internal/config"
	"github.com/navalhaclub/booking-api/internal/domain/schedule"
	"github.com/navalhaclub/booking-api/internal/handlers"
	infraRepo "github.com/navalhaclub/booking-api/internal/infra/repository"
	"github.com/navalhaclub/booking-api/internal/middleware"
	"github.com/navalhaclub/booking-api/internal/storage"
	ucAppointment "github.com/navalhaclub/booking-api/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	redisCache := cache.New(cfg.RedisURL, log)

	avatarStore := storage.NewAvatarStore(cfg) // nil sem S3 configurado

	bookingLimiter := middleware.NewRateLimiter(3, time.Hour)
	adminAuthLimiter := middleware.NewRateLimiter(3, 10*time.Minute)
	readLimiter := middleware.NewRateLimiter(20, time.Minute)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		schedule.DefaultWeek(),
		cfg.Timezone,
	)

	bookingUC := ucAppointment.NewCreateBooking(
		appointmentRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	cancelUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	completeUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	listUC := ucAppointment.NewListAppointmentsByRange(appointmentRepo)

	reportUC := ucAppointment.NewBuildReport(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(db, cfg, availabilityUC, bookingUC)
	authHandler := handlers.NewAuthHandler(db, auditDispatcher)
	meHandler := handlers.NewMeHandler(db)

	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	professionalHandler := handlers.NewProfessionalHandler(db, auditDispatcher, avatarStore)
	businessHoursHandler := handlers.NewBusinessHoursHandler(db, redisCache, auditDispatcher)
	blockedTimesHandler := handlers.NewBlockedTimesHandler(db, cfg, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		cfg,
		bookingUC,
		cancelUC,
		completeUC,
		listUC,
	)

	subscriptionHandler := handlers.NewSubscriptionHandler(db, cfg, auditDispatcher)
	reportHandler := handlers.NewReportHandler(cfg, reportUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, cfg)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(readLimiter.Middleware("public_read"))
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/professionals", publicHandler.ListProfessionals)
			publicAPI.GET("/availability", publicHandler.Availability)

			publicAPI.POST("/bookings",
				bookingLimiter.Middleware("booking"),
				publicHandler.CreateBooking,
			)

			publicAPI.POST("/check-phone", publicHandler.CheckPhone)
			publicAPI.POST("/subscriptions/check", publicHandler.CheckSubscriptions)

			publicAPI.POST("/my-appointments",
				middleware.ClientAuthMiddleware(cfg),
				publicHandler.MyAppointments,
			)
		}

		// ------------------------------
		// AUTH ADMIN
		// ------------------------------
		adminAPI := api.Group("/admin")

		adminAPI.POST("/auth/login",
			adminAuthLimiter.Middleware("admin_auth"),
			authHandler.Login,
		)

		// ------------------------------
		// API ADMIN (sessão opaca)
		// ------------------------------
		secured := adminAPI.Group("/")
		secured.Use(middleware.AdminAuthMiddleware(db))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.PATCH("/services/:id/toggle", serviceHandler.Toggle)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/professionals", professionalHandler.List)
			secured.POST("/professionals", professionalHandler.Create)
			secured.PATCH("/professionals/:id", professionalHandler.Update)
			secured.PATCH("/professionals/:id/toggle", professionalHandler.Toggle)
			secured.DELETE("/professionals/:id", professionalHandler.Delete)
			secured.POST("/professionals/:id/avatar", professionalHandler.UploadAvatar)

			secured.GET("/business-hours", businessHoursHandler.Get)
			secured.PUT("/business-hours", businessHoursHandler.Update)

			secured.GET("/blocked-times", blockedTimesHandler.List)
			secured.POST("/blocked-times", blockedTimesHandler.Create)
			secured.DELETE("/blocked-times/:id", blockedTimesHandler.Delete)

			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/range", appointmentHandler.ListByRange)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			secured.GET("/subscriptions", subscriptionHandler.List)
			secured.POST("/subscriptions", subscriptionHandler.Create)
			secured.PATCH("/subscriptions/:id/cancel", subscriptionHandler.Cancel)

			secured.GET("/reports/summary", reportHandler.Summary)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
