package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberdesk/booking-api/internal/cache"
	"github.com/barberdesk/booking-api/internal/config"
	"github.com/barberdesk/booking-api/internal/handlers"
	infraRepo "github.com/barberdesk/booking-api/internal/infra/repository"
	"github.com/barberdesk/booking-api/internal/middleware"
	"github.com/barberdesk/booking-api/internal/notify"
	ucAppointment "github.com/barberdesk/booking-api/internal/usecase/appointment"
	ucRating "github.com/barberdesk/booking-api/internal/usecase/rating"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, store cache.Cache, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	ratingRepo := infraRepo.NewRatingGormRepository(db)

	notifier := notify.New(db)
	dispatcher := notify.NewDispatcher(notifier)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		dispatcher,
		cfg.Timezone,
	)

	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(
		appointmentRepo,
		dispatcher,
		cfg.Timezone,
	)

	freeSlotsUC := ucAppointment.NewFreeSlots(appointmentRepo)

	createRatingUC := ucRating.NewCreateRating(ratingRepo)
	listRatingsUC := ucRating.NewListBarberRatings(ratingRepo)
	canReviewUC := ucRating.NewCanReview(ratingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	barberHandler := handlers.NewBarberHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		store,
		cfg.Timezone,
		createAppointmentUC,
		updateStatusUC,
		freeSlotsUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(db)
	ratingHandler := handlers.NewRatingHandler(createRatingUC, listRatingsUC, canReviewUC)
	notificationHandler := handlers.NewNotificationHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db, store, cfg.Timezone)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PUT("/me", meHandler.UpdateMe)

			// ------------------------------
			// BARBERS
			// ------------------------------
			secured.GET("/barbers", barberHandler.List)
			secured.GET("/barbers/:id", barberHandler.Get)
			secured.POST("/barbers", barberHandler.Create)
			secured.PUT("/barbers/:id", barberHandler.Update)
			secured.DELETE("/barbers/:id", barberHandler.Delete)

			secured.GET("/barbers/:id/availability", availabilityHandler.Get)
			secured.PUT("/barbers/:id/availability", availabilityHandler.Update)
			secured.POST("/barbers/:id/availability/apply-monday", availabilityHandler.ApplyMonday)

			secured.GET("/barbers/:id/free-slots", appointmentHandler.FreeSlots)

			secured.GET("/barbers/:id/ratings", ratingHandler.ListByBarber)
			secured.POST("/barbers/:id/ratings", ratingHandler.Create)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.POST("/clients", clientHandler.Create)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.GET("/services/:id", serviceHandler.Get)
			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/appointments/:id/can-review", ratingHandler.CanReview)

			// ------------------------------
			// NOTIFICATIONS / DASHBOARD
			// ------------------------------
			secured.GET("/notifications", notificationHandler.ListRecent)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

			secured.GET("/dashboard/stats", dashboardHandler.GetStats)
		}
	}
}
