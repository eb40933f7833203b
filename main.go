// File: hoofline/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hoofline/config"
	"hoofline/cron"
	"hoofline/database"
	availabilityRepo "hoofline/database/repository/availability"
	bookingRepo "hoofline/database/repository/booking"
	customerRepoPkg "hoofline/database/repository/customer"
	providerRepoPkg "hoofline/database/repository/provider"
	routeRepoPkg "hoofline/database/repository/route"
	"hoofline/handlers"
	"hoofline/middleware"
	"hoofline/routes"
	bookingSvc "hoofline/services/booking"
	customerSvc "hoofline/services/customer"
	"hoofline/services/notification"
	providerSvc "hoofline/services/provider"
	routeSvc "hoofline/services/route"
	"hoofline/services/scheduling"
	"hoofline/services/travel"
	"hoofline/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()
	availabilityRepo.EnsureAvailabilityIndexes()
	providerRepoPkg.EnsureProviderIndexes()
	customerRepoPkg.EnsureCustomerIndexes()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	custRepo := customerRepoPkg.NewMongoCustomerRepo()
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	bkRepo := bookingRepo.NewMongoBookingRepo()
	rtRepo := routeRepoPkg.NewMongoRouteRepo()

	// services.
	providerService := &providerSvc.DefaultProviderService{Repo: provRepo}
	customerService := &customerSvc.DefaultCustomerService{Repo: custRepo}
	scheduleService := &providerSvc.DefaultScheduleService{Availability: availRepo}

	notificationService := &notification.DefaultNotificationService{
		Customers: custRepo,
		Providers: provRepo,
	}

	estimator := travel.NewHaversineEstimator(
		config.AppConfig.TravelAvgSpeedKmh,
		config.AppConfig.TravelMinBufferMin,
	)
	schedulingEngineInstance := &scheduling.DefaultSchedulingEngine{
		Availability: availRepo,
		Bookings:     bkRepo,
		Providers:    provRepo,
		Generator: scheduling.SlotGenerator{
			Travel: scheduling.TravelTimeEvaluator{Estimator: estimator},
		},
	}

	reminderScheduler := cron.NewReminderScheduler()
	cron.InitReminderWorker(notificationService)

	bookingService := &bookingSvc.DefaultBookingService{
		Engine:       schedulingEngineInstance,
		Bookings:     bkRepo,
		Customers:    custRepo,
		Providers:    provRepo,
		Notification: notificationService,
		Reminders:    reminderScheduler,
	}

	routeService := &routeSvc.DefaultRouteService{
		Repo:         rtRepo,
		Bookings:     bkRepo,
		Notification: notificationService,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:         handlers.NewAuthHandler(customerService, providerService),
		Availability: handlers.NewAvailabilityHandler(schedulingEngineInstance),
		Schedule:     handlers.NewScheduleHandler(scheduleService),
		Booking:      handlers.NewBookingHandler(bookingService),
		Route:        handlers.NewRouteHandler(routeService),
		CustomerRepo: custRepo,
		ProviderRepo: provRepo,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
