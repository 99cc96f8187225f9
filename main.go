// File: venuely/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"venuely/config"
	"venuely/database"
	addonRepoPkg "venuely/database/repository/addon"
	bookingRepoPkg "venuely/database/repository/booking"
	photoRepoPkg "venuely/database/repository/photo"
	planRepoPkg "venuely/database/repository/plan"
	slotRepoPkg "venuely/database/repository/slot"
	userRepoPkg "venuely/database/repository/user"
	"venuely/handlers"
	"venuely/routes"
	"venuely/services/booking"
	"venuely/services/catalog"
	"venuely/services/notification"
	"venuely/services/payment"
	"venuely/services/user"
	"venuely/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage: %v", err)
	}

	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	slotRepo := slotRepoPkg.NewMongoSlotRepo()
	planRepo := planRepoPkg.NewMongoPlanRepo()
	addonRepo := addonRepoPkg.NewMongoAddonRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	photoRepo := photoRepoPkg.NewMongoPhotoRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Users: userRepo,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		SlotRepo:  slotRepo,
		PlanRepo:  planRepo,
		AddonRepo: addonRepo,
		Notifier:  notificationService,
		Cache:     utils.GetCacheClient(),
	}

	catalogService := &catalog.DefaultCatalogService{
		Plans:    planRepo,
		Addons:   addonRepo,
		Slots:    slotRepo,
		Bookings: bookingRepo,
		Cache:    utils.GetCacheClient(),
	}

	authService := &user.DefaultAuthService{Repo: userRepo}
	if err := authService.SeedAdmin(); err != nil {
		logger.Sugar().Fatalf("main: failed to seed admin account: %v", err)
	}

	paymentService := &payment.DefaultPaymentService{}

	// Assemble and register the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService, paymentService),
		Catalog: handlers.NewCatalogHandler(catalogService),
		Photo:   handlers.NewPhotoHandler(photoRepo, storageService),
		Auth:    handlers.NewAuthHandler(authService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
