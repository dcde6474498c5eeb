package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"symptomtracker/database"
	"symptomtracker/internal/cache"
	"symptomtracker/internal/controllers"
	"symptomtracker/internal/events"
	"symptomtracker/internal/repository"
	"symptomtracker/internal/services"
	"symptomtracker/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Connect to database
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Redis backs the refresh token blacklist
	redisClient, err := cache.NewRedisClient()
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// RabbitMQ publisher for entries forwarded to the physician. Optional:
	// without a broker the forward endpoint still works, it just marks the
	// entry without emitting an event.
	var publisher events.Publisher
	if rabbitMQURL := os.Getenv("RABBITMQ_URL"); rabbitMQURL != "" {
		publisher, err = events.NewPublisher(rabbitMQURL, "physician.entry_forwarded")
		if err != nil {
			log.Printf("Warning: RabbitMQ connection failed, forward events disabled: %v", err)
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	profileRepo := repository.NewUserProfileRepository(database.DB)
	settingsRepo := repository.NewUserSettingsRepository(database.DB)
	painRepo := repository.NewPainEntryRepository(database.DB)
	wellnessRepo := repository.NewWellnessEntryRepository(database.DB)
	diaryRepo := repository.NewDiaryEntryRepository(database.DB)
	physicianRepo := repository.NewPhysicianInfoRepository(database.DB)
	notificationRepo := repository.NewNotificationRepository(database.DB)

	// Initialize services
	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}
	authService := services.NewAuthService(userRepo, redisClient, jwtSecret, 30*time.Minute, 7*24*time.Hour)
	profileService := services.NewProfileService(userRepo, profileRepo, settingsRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	insightsService := services.NewInsightsService(userRepo, painRepo, wellnessRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(authService, userRepo)
	profileController := controllers.NewUserProfileController(profileService)
	settingsController := controllers.NewUserSettingsController(settingsService)
	painController := controllers.NewPainEntryController(painRepo, publisher)
	wellnessController := controllers.NewWellnessEntryController(wellnessRepo, publisher)
	diaryController := controllers.NewDiaryEntryController(diaryRepo, publisher)
	physicianController := controllers.NewPhysicianInfoController(physicianRepo)
	notificationController := controllers.NewNotificationController(notificationRepo)
	insightsController := controllers.NewInsightsController(insightsService)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Symptom Tracker API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterUserProfileRoutes(router, profileController)
	routes.RegisterUserSettingsRoutes(router, settingsController)
	routes.RegisterPainEntryRoutes(router, painController)
	routes.RegisterWellnessEntryRoutes(router, wellnessController)
	routes.RegisterDiaryEntryRoutes(router, diaryController)
	routes.RegisterPhysicianInfoRoutes(router, physicianController)
	routes.RegisterNotificationRoutes(router, notificationController)
	routes.RegisterInsightsRoutes(router, insightsController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Symptom Tracker API started on port %s", port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
