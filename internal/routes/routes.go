package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/raumbelegung/room-booking-api/internal/config"
	"github.com/raumbelegung/room-booking-api/internal/handlers"
	infraRepo "github.com/raumbelegung/room-booking-api/internal/infra/repository"
	"github.com/raumbelegung/room-booking-api/internal/middleware"
	ucBooking "github.com/raumbelegung/room-booking-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	// ======================================================
	// USE CASES (BOOKINGS)
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo)
	updateBookingUC := ucBooking.NewUpdateBooking(bookingRepo)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	roomHandler := handlers.NewRoomHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		updateBookingUC,
		deleteBookingUC,
		listBookingsUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/rooms", roomHandler.List)
		api.GET("/rooms/:id", roomHandler.Get)
		api.GET("/rooms/:id/availability", availabilityHandler.Get)

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

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/bookings", bookingHandler.List)
			secured.POST(
				"/bookings",
				middleware.RateLimit(rdb, cfg.RateLimitPerMinute, time.Minute),
				bookingHandler.Create,
			)
			secured.PUT("/bookings/:id", bookingHandler.Update)
			secured.DELETE("/bookings/:id", bookingHandler.Delete)

			// ------------------------------
			// ROOM ADMINISTRATION
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/rooms", roomHandler.Create)
				admin.PUT("/rooms/:id", roomHandler.Update)
				admin.DELETE("/rooms/:id", roomHandler.Delete)
			}
		}
	}
}
