package main

import (
	"log"

	"serveez/internal/config"
	"serveez/internal/database"
	"serveez/internal/middleware"
	"serveez/internal/modules/auth"
	"serveez/internal/modules/booking"
	"serveez/internal/modules/catalog"
	"serveez/internal/modules/message"
	"serveez/internal/modules/notification"
	"serveez/internal/modules/provider"
	"serveez/internal/modules/rating"
	"serveez/internal/modules/review"
	jwtsvc "serveez/internal/pkg/jwt"
	"serveez/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	listingRepo := repository.NewListingRepository(db)
	profileRepo := repository.NewProviderProfileRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	notificationService := notification.NewService(notificationRepo, userRepo)
	notificationHandler := notification.NewHandler(notificationService)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(listingRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	providerService := provider.NewService(profileRepo)
	providerHandler := provider.NewHandler(providerService)

	bookingService := booking.NewService(bookingRepo, listingRepo, notificationService)
	bookingHandler := booking.NewHandler(bookingService)

	aggregator := rating.NewAggregator(reviewRepo, profileRepo)

	reviewService := review.NewService(reviewRepo, bookingRepo, aggregator, notificationService)
	reviewHandler := review.NewHandler(reviewService)

	hub := message.NewHub()
	defer hub.Close()

	messageService := message.NewService(messageRepo, bookingRepo, notificationService, hub)
	messageHandler := message.NewHandler(messageService)
	wsHandler := message.NewWSHandler(hub, j, messageService)

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/ws/messages", wsHandler.HandleWebSocket)

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		providerHandler.RegisterPublicRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			reviewHandler.RegisterRoutes(protected)
			messageHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)

			providers := protected.Group("/")
			providers.Use(middleware.ProviderOnly())
			{
				catalogHandler.RegisterProviderRoutes(providers)
				providerHandler.RegisterProviderRoutes(providers)
			}
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			bookingHandler.RegisterAdminRoutes(admin)
			reviewHandler.RegisterAdminRoutes(admin)
			messageHandler.RegisterAdminRoutes(admin)
			notificationHandler.RegisterAdminRoutes(admin)
			catalogHandler.RegisterAdminRoutes(admin)
		}
	}

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
