package router

import (
	"time"

	"github.com/tripnest/hotel-services-backend/internal/config"
	"github.com/tripnest/hotel-services-backend/internal/database/repository"
	"github.com/tripnest/hotel-services-backend/internal/handlers"
	"github.com/tripnest/hotel-services-backend/internal/middleware"
	"github.com/tripnest/hotel-services-backend/internal/services"
	"github.com/tripnest/hotel-services-backend/internal/services/auth"
	"github.com/tripnest/hotel-services-backend/internal/services/excel"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter wires repositories, services and handlers onto the static
// route table. RabbitMQ, redis and the HotelBeds config are optional;
// a nil HotelBeds config disables the provider proxy routes.
func SetupRouter(db *gorm.DB, rabbitMQ *services.RabbitMQService, redisClient *redis.Client, hotelBedsCfg *config.HotelBedsConfig) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Use middleware
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	chatRoomRepo := repository.NewChatRoomRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	favouriteRepo := repository.NewFavouriteRepository(db)

	// Services
	authService := auth.NewAuthService(db)
	permService := services.NewPermissionService(roleRepo)
	userService := services.NewUserService(userRepo, permService)
	roleService := services.NewRoleService(roleRepo)
	hotelService := services.NewHotelService(hotelRepo)
	chatRoomService := services.NewChatRoomService(chatRoomRepo, hotelRepo, permService)
	favouriteService := services.NewFavouriteService(favouriteRepo, hotelRepo)
	excelService := excel.NewExcelService()

	var publisher services.ChatEventPublisher
	if rabbitMQ != nil {
		publisher = rabbitMQ
	}
	messageService := services.NewMessageService(messageRepo, chatRoomRepo, permService, publisher)

	// Middleware
	bearerTokenMiddleware := middleware.NewBearerTokenMiddleware(authService)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, favouriteService)
	hotelHandler := handlers.NewHotelHandler(hotelService, excelService, permService)
	chatRoomHandler := handlers.NewChatRoomHandler(chatRoomService, messageService)
	messageHandler := handlers.NewMessageHandler(messageService)
	roleHandler := handlers.NewRoleHandler(roleService, permService)
	signUpCodeHandler := handlers.NewSignUpCodeHandler(authService, permService)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	logrus.Info("Swagger UI endpoint registered at /swagger/index.html")

	// API v1 routes
	api := r.Group("/api/v1")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now().Format(time.RFC3339),
			})
		})

		// Auth routes (public)
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh", authHandler.Refresh)
		}

		// Public catalog reads
		api.GET("/hotels", hotelHandler.List)
		api.GET("/hotels/search", hotelHandler.Search)

		// Public code validation
		api.POST("/sign-up-codes/validate", signUpCodeHandler.Validate)

		// Protected routes
		protected := api.Group("")
		protected.Use(bearerTokenMiddleware.BearerTokenAuthMiddleware())
		{
			protected.POST("/auth/logout", authHandler.Logout)

			// User routes
			users := protected.Group("/users")
			{
				users.GET("", userHandler.List)
				users.GET("/:id", userHandler.Get)
				users.PUT("/:id", userHandler.Update)
				users.DELETE("/:id", userHandler.Delete)
				users.POST("/:id/avatar", userHandler.UploadAvatar)
				users.GET("/:id/favourites", userHandler.ListFavourites)
				users.POST("/:id/favourites", userHandler.AddFavourite)
				users.GET("/:id/favourites/check", userHandler.CheckFavourite)
				users.DELETE("/:id/favourites/:hotelId", userHandler.RemoveFavourite)
			}

			// Hotel routes. Export is registered before :id so gin does
			// not treat it as an id segment.
			hotels := protected.Group("/hotels")
			{
				hotels.GET("/export", hotelHandler.Export)
				hotels.POST("", hotelHandler.Create)
				hotels.PUT("/:id", hotelHandler.Update)
				hotels.DELETE("/:id", hotelHandler.Delete)
			}
			api.GET("/hotels/:id", hotelHandler.Get)

			// HotelBeds proxy routes
			if hotelBedsCfg != nil {
				hotelBedsService := services.NewHotelBedsService(hotelBedsCfg, redisClient, hotelRepo)
				hotelBedsHandler := handlers.NewHotelBedsHandler(hotelBedsService, permService)

				hotelBeds := protected.Group("/hotel-beds")
				{
					hotelBeds.GET("/check-status", hotelBedsHandler.CheckStatus)
					hotelBeds.GET("/search", hotelBedsHandler.Search)
					hotelBeds.POST("/sync", hotelBedsHandler.Sync)
				}
			} else {
				logrus.Warn("HotelBeds routes disabled: missing credentials")
			}

			// Chat room routes
			chatRooms := protected.Group("/chat-rooms")
			{
				chatRooms.GET("", chatRoomHandler.List)
				chatRooms.POST("", chatRoomHandler.Create)
				chatRooms.GET("/by-hotel/:hotelId", chatRoomHandler.GetOrCreateByHotel)
				chatRooms.GET("/hotel/:hotelId", chatRoomHandler.ListByHotel)
				chatRooms.GET("/:id", chatRoomHandler.Get)
				chatRooms.PUT("/:id", chatRoomHandler.Update)
				chatRooms.DELETE("/:id", chatRoomHandler.Delete)
				chatRooms.GET("/:id/messages", chatRoomHandler.ListMessages)
				chatRooms.POST("/:id/messages", chatRoomHandler.PostMessage)
			}

			// Message routes
			messages := protected.Group("/messages")
			{
				messages.GET("/:id", messageHandler.Get)
				messages.PUT("/:id", messageHandler.Update)
				messages.DELETE("/:id/soft", messageHandler.SoftDelete)
				messages.DELETE("/:id", messageHandler.Delete)
			}

			// Role routes
			roles := protected.Group("/roles")
			{
				roles.GET("", roleHandler.List)
				roles.GET("/:id", roleHandler.Get)
				roles.POST("", roleHandler.Create)
				roles.PUT("/:id", roleHandler.Update)
				roles.DELETE("/:id", roleHandler.Delete)
				roles.POST("/:id/assign", roleHandler.Assign)
				roles.POST("/:id/remove", roleHandler.Remove)
			}

			// Sign-up code routes
			signUpCodes := protected.Group("/sign-up-codes")
			{
				signUpCodes.GET("", signUpCodeHandler.List)
				signUpCodes.POST("/generate", signUpCodeHandler.Generate)
				signUpCodes.DELETE("/:id", signUpCodeHandler.Delete)
			}
		}
	}

	return r
}
