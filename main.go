package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servana/config"
	"servana/database"
	adminRepoPkg "servana/database/repository/admin"
	bookingRepoPkg "servana/database/repository/booking"
	providerRepoPkg "servana/database/repository/provider"
	reviewRepoPkg "servana/database/repository/review"
	serviceRepoPkg "servana/database/repository/service"
	userRepoPkg "servana/database/repository/user"
	"servana/handlers"
	"servana/middleware"
	"servana/routes"
	"servana/services/admin"
	"servana/services/analytics"
	"servana/services/booking"
	"servana/services/catalog"
	"servana/services/email"
	"servana/services/provider"
	"servana/services/review"
	"servana/services/stats"
	"servana/services/storage"
	"servana/services/user"
	"servana/tasks"
	"servana/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	svcRepo := serviceRepoPkg.NewMongoServiceRepo()
	bkRepo := bookingRepoPkg.NewMongoBookingRepo()
	revRepo := reviewRepoPkg.NewMongoReviewRepo()
	admRepo := adminRepoPkg.NewMongoAdminRepo()
	ensureIndexes(logger, userRepo, provRepo, svcRepo, bkRepo, revRepo, admRepo)

	tokens := utils.NewTokenIssuer(
		config.AppConfig.JWTSecret,
		config.AppConfig.AdminJWTSecret,
		config.TokenTTL(),
	)

	// Email is optional; the notifier is nil-safe when credentials are
	// missing.
	notifier := &email.Notifier{}
	if brevo := email.NewBrevoClient(
		config.AppConfig.BrevoAPIKey,
		config.AppConfig.BrevoSenderEmail,
		config.AppConfig.BrevoSenderName,
	); brevo != nil {
		notifier.Sender = brevo
	} else {
		logger.Warn("main: email credentials missing, notifications disabled")
	}

	statsPropagator := &stats.Propagator{
		Users:     userRepo,
		Providers: provRepo,
		Services:  svcRepo,
	}

	taskClient := tasks.NewClient()
	defer taskClient.Close()

	worker := &tasks.Worker{
		Bookings: bkRepo,
		Stats:    statsPropagator,
		Notifier: notifier,
	}
	worker.Start()

	// Services.
	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Tokens:   tokens,
		Notifier: notifier,
	}
	providerService := &provider.DefaultProviderService{
		Repo:     provRepo,
		Tokens:   tokens,
		Notifier: notifier,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo:      svcRepo,
		Providers: provRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:      bkRepo,
		Users:     userRepo,
		Providers: provRepo,
		Services:  svcRepo,
		Stats:     statsPropagator,
		Notifier:  notifier,
		Tasks:     taskClient,
	}
	reviewService := &review.DefaultReviewService{
		Repo:      revRepo,
		Services:  svcRepo,
		Providers: provRepo,
	}
	adminService := &admin.DefaultAdminService{
		Repo:   admRepo,
		Tokens: tokens,
	}
	analyticsService := &analytics.DefaultAnalyticsService{
		Users:     userRepo,
		Providers: provRepo,
		Services:  svcRepo,
		Bookings:  bkRepo,
		Reviews:   revRepo,
	}

	storageService, err := storage.NewStorageService(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		logger.Fatal("main: failed to initialize storage service", zap.Error(err))
	}

	authenticator := &middleware.Authenticator{
		Tokens:    tokens,
		Users:     userRepo,
		Providers: provRepo,
		Admins:    admRepo,
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	handlerBundle := &handlers.HandlerBundle{
		Auth:      authenticator,
		User:      &handlers.UserHandler{UserService: userService},
		Provider:  &handlers.ProviderHandler{ProviderService: providerService},
		Service:   &handlers.ServiceHandler{Catalog: catalogService},
		Booking:   &handlers.BookingHandler{BookingService: bookingService},
		Review:    &handlers.ReviewHandler{ReviewService: reviewService},
		Admin:     &handlers.AdminHandler{AdminService: adminService},
		Analytics: &handlers.AnalyticsHandler{Analytics: analyticsService},
		Storage:   &handlers.StorageHandler{StorageSvc: storageService},
		Health:    &handlers.HealthHandler{MongoClient: database.MongoClient},
	}

	routes.RegisterRoutes(router, handlerBundle)

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

type indexer interface {
	EnsureIndexes() error
}

func ensureIndexes(logger *zap.Logger, repos ...indexer) {
	for _, r := range repos {
		if err := r.EnsureIndexes(); err != nil {
			logger.Warn("main: failed to ensure indexes", zap.Error(err))
		}
	}
}
