package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"pacificreef/constants"
	"pacificreef/controllers"
	"pacificreef/middleware"
	"pacificreef/services"
	"pacificreef/services/logger"
)

// SetupRoutes wires services, controllers and the /api/v1 surface.
// It returns the room service so the caller can hook it into the cron
// scheduler.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) *services.RoomService {
	log := logger.NewDefaultLogger(logger.InfoLevel)

	notifier := services.NewReservationNotifier(m, log)

	authService := services.NewAuthService(services.AuthServiceOptions{DB: db, Logger: log})
	userService := services.NewUserService(services.UserServiceOptions{DB: db, Logger: log})
	roomService := services.NewRoomService(services.RoomServiceOptions{DB: db, Redis: redisCli, Logger: log})
	reservationService := services.NewReservationService(services.ReservationServiceOptions{
		DB:       db,
		Logger:   log,
		Notifier: notifier,
	})

	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService)
	roomController := controllers.NewRoomController(roomService)
	reservationController := controllers.NewReservationController(reservationService)

	api := router.Group("/api/v1")
	api.Use(middleware.SessionMiddleware())
	api.Use(middleware.ErrorHandler())

	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
		auth.POST("/logout", authController.Logout)
		auth.POST("/refresh", authController.Refresh)
		auth.POST("/google", authController.GoogleLogin)
	}

	rooms := api.Group("/rooms")
	{
		rooms.GET("", roomController.GetAllRooms)
		rooms.GET("/:id", roomController.GetRoomDetail)

		adminRooms := rooms.Group("")
		adminRooms.Use(middleware.AuthMiddleware(constants.RoleAdmin))
		{
			adminRooms.POST("", roomController.CreateRoom)
			adminRooms.PUT("/status", roomController.ChangeRoomStatus)
		}
	}

	reservations := api.Group("/reservations")
	reservations.Use(middleware.AuthMiddleware(constants.RoleClient, constants.RoleAdmin))
	{
		reservations.POST("", reservationController.CreateReservation)
		reservations.GET("/history", reservationController.GetReservationHistory)
		reservations.GET("/:id", reservationController.GetReservationDetail)
		reservations.POST("/:id/cancel", reservationController.CancelReservation)

		adminReservations := reservations.Group("")
		adminReservations.Use(middleware.AuthMiddleware(constants.RoleAdmin))
		{
			adminReservations.GET("", reservationController.GetReservations)
			adminReservations.POST("/:id/confirm", reservationController.ConfirmReservation)
			adminReservations.POST("/:id/checkin", reservationController.CheckInReservation)
			adminReservations.POST("/:id/checkout", reservationController.CheckOutReservation)
		}
	}

	users := api.Group("/users")
	users.Use(middleware.AuthMiddleware(constants.RoleAdmin))
	{
		users.GET("", userController.GetUsers)
		users.GET("/search", userController.SearchUsers)
		users.GET("/stats", userController.GetUserStats)
		users.GET("/inactive", userController.GetInactiveUsers)
		users.GET("/:id", userController.GetUserByID)
	}

	return roomService
}
