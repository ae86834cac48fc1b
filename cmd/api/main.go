package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"ucoportal/internal/auth"
	"ucoportal/internal/config"
	"ucoportal/internal/database"
	"ucoportal/internal/http/handler"
	"ucoportal/internal/http/middleware"
	"ucoportal/internal/mailer"
	"ucoportal/internal/otel"
	"ucoportal/internal/repository/mongodb"
	"ucoportal/internal/service"
	"ucoportal/internal/storage"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	db, err := database.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		_ = db.Client().Disconnect(context.Background())
	}()

	indexCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	err = database.EnsureIndexes(indexCtx, db)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to ensure indexes")
	}

	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize object storage")
	}

	mail := mailer.NewSMTP(cfg.SMTP, log)
	tokens := auth.NewTokenManager(
		cfg.Auth.Secret,
		cfg.Auth.Issuer,
		time.Duration(cfg.Auth.AccessTTLMin)*time.Minute,
		time.Duration(cfg.Auth.RefreshTTLHours)*time.Hour,
	)

	userRepo := mongodb.NewUserMongo(db)
	fboRepo := mongodb.NewFBOMongo(db)
	collectionRepo := mongodb.NewCollectionMongo(db)
	tripRepo := mongodb.NewTripMongo(db)
	paymentRepo := mongodb.NewPaymentMongo(db)
	billRepo := mongodb.NewBillMongo(db)
	supportRepo := mongodb.NewSupportMongo(db)
	itemRepo := mongodb.NewItemMongo(db)
	notificationRepo := mongodb.NewNotificationMongo(db)
	settingRepo := mongodb.NewSettingMongo(db)
	pricingRepo := mongodb.NewPricingMongo(db)

	authSvc := service.NewAuthService(userRepo, settingRepo, tokens)
	userSvc := service.NewUserService(userRepo, fboRepo, settingRepo)
	fboSvc := service.NewFBOService(fboRepo, userRepo, objStore)
	collectionSvc := service.NewCollectionService(collectionRepo, fboRepo, tripRepo, settingRepo, objStore)
	tripSvc := service.NewTripService(tripRepo, userRepo)
	paymentSvc := service.NewPaymentService(paymentRepo, collectionRepo, fboRepo)
	billSvc := service.NewBillService(billRepo, userRepo, objStore)
	settingSvc := service.NewSettingService(settingRepo, pricingRepo)
	notificationSvc := service.NewNotificationService(notificationRepo)
	dashboardSvc := service.NewDashboardService(fboRepo, collectionRepo, tripRepo)
	itemSvc := service.NewItemService(itemRepo)
	vendorSvc := service.NewVendorService(
		fboRepo, collectionRepo, billRepo, userRepo, supportRepo,
		notificationSvc, settingSvc, mail, log,
	)

	app := fiber.New(fiber.Config{
		ErrorHandler: handler.ErrorHandler(),
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())
	app.Use(otelfiber.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	handler.RegisterRoutes(app, db, handler.Handlers{
		Auth:       handler.NewAuthHandler(authSvc),
		Admin:      handler.NewAdminHandler(userSvc, fboSvc, collectionSvc, tripSvc, paymentSvc, settingSvc, dashboardSvc),
		Enrollment: handler.NewEnrollmentHandler(fboSvc, dashboardSvc),
		Collection: handler.NewCollectionHandler(collectionSvc, tripSvc, fboSvc, billSvc, dashboardSvc),
		Vendor:     handler.NewVendorHandler(vendorSvc),
		Common:     handler.NewCommonHandler(notificationSvc, settingSvc, userSvc, objStore),
		Items:      handler.NewItemHandler(itemSvc),
	}, middleware.Auth(userRepo, tokens))

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Msg("server starting")
		if err := app.Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("tracing shutdown failed")
	}
}
