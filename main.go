package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tinyhouse/config"
	"tinyhouse/cron"
	"tinyhouse/database"
	bookingRepoPkg "tinyhouse/database/repository/booking"
	listingRepoPkg "tinyhouse/database/repository/listing"
	userRepoPkg "tinyhouse/database/repository/user"
	"tinyhouse/handlers"
	"tinyhouse/resolvers"
	"tinyhouse/routes"
	"tinyhouse/services/booking"
	"tinyhouse/services/geocode"
	"tinyhouse/services/listing"
	"tinyhouse/services/notification"
	"tinyhouse/services/payment"
	"tinyhouse/services/tasks"
	"tinyhouse/services/user"
	"tinyhouse/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Fatal("main: failed to initialize cloudinary storage service", zap.Error(err))
	}

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	listingRepo := listingRepoPkg.NewMongoListingRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// integrations.
	geocoder := geocode.NewGoogleGeocoder(config.AppConfig.GoogleAPIKey, logger,
		geocode.WithCache(utils.GetCacheClient(), utils.GeocodeCachePrefix, utils.GeocodeCacheTTL))
	payments := payment.NewStripePaymentService(config.AppConfig.StripeClientID, logger)

	queue := asynq.NewClient(cron.RedisOpt())
	defer queue.Close()
	reminders := tasks.NewReminderScheduler(queue)

	notificationService, err := notification.NewDefaultNotificationService(userRepo, logger)
	if err != nil {
		logger.Fatal("main: failed to initialize notification service", zap.Error(err))
	}
	worker := cron.InitReminderWorker(notificationService, logger)

	// services.
	userService := &user.DefaultUserService{
		Users:    userRepo,
		Listings: listingRepo,
		Bookings: bookingRepo,
		Google: user.NewGoogleIdentity(
			config.AppConfig.GoogleClientID,
			config.AppConfig.GoogleClientSecret,
			config.AppConfig.GoogleRedirectURL,
		),
		Payments: payments,
		Issue: func(subject string) (string, error) {
			return utils.GenerateToken(subject, utils.ViewerTokenTTL)
		},
		Logger: logger,
	}

	listingService := listing.NewListingService(
		listingRepo, userRepo, bookingRepo,
		geocoder, storageService, config.AppConfig.CloudinaryFolder, logger,
	)

	bookingService := booking.NewBookingService(
		&booking.RepoStore{Listings: listingRepo, Users: userRepo, Bookings: bookingRepo},
		booking.NewRedisLocker(utils.GetLockClient(), utils.ListingLockPrefix),
		payments,
		reminders,
		logger,
		config.AppConfig.BookingLockTTL,
	)

	resolver := &resolvers.Resolver{Users: userRepo, Listings: listingRepo}
	handlerBundle := handlers.NewHandlerBundle(userService, listingService, bookingService, resolver)

	router := gin.New()
	if proxies := config.AppConfig.TrustedProxies; len(proxies) > 0 {
		if err := router.SetTrustedProxies(proxies); err != nil {
			logger.Fatal("main: invalid trusted proxies", zap.Strings("proxies", proxies), zap.Error(err))
		}
	}
	routes.RegisterRoutes(router, handlerBundle)

	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	utils.StartHealthMonitor(healthCtx, []*redis.Client{utils.GetCacheClient(), utils.GetLockClient()}, database.MongoClient)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", zap.String("addr", srv.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	worker.Shutdown()
	if err := database.Close(ctx); err != nil {
		logger.Warn("main: failed to close MongoDB", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
