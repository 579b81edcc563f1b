package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/iffertmedia/dashboard-backend/internal/auth"
	"github.com/iffertmedia/dashboard-backend/internal/config"
	"github.com/iffertmedia/dashboard-backend/internal/controller"
	"github.com/iffertmedia/dashboard-backend/internal/db"
	"github.com/iffertmedia/dashboard-backend/internal/events"
	"github.com/iffertmedia/dashboard-backend/internal/repository"
	"github.com/iffertmedia/dashboard-backend/internal/service"
	"github.com/iffertmedia/dashboard-backend/internal/sheets"
	"github.com/iffertmedia/dashboard-backend/internal/store"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	// Optional Postgres: admin overrides survive restarts when configured.
	var overrideRepo repository.OverrideRepositoryInterface
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("database connection failed", zap.Error(err))
		}
		defer conn.Close()
		overrideRepo = &repository.OverrideRepository{DB: conn}
		logger.Info("✅ connected to database")
	} else {
		logger.Info("no DATABASE_URL set, admin overrides are in-memory only")
	}

	// Optional RabbitMQ: audit events for cmd/worker. Falls back to the
	// in-process bus.
	var publisher events.Publisher
	if cfg.AMQPURL != "" {
		amqpPub, err := events.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			logger.Fatal("RabbitMQ connection failed", zap.Error(err))
		}
		defer amqpPub.Close()
		publisher = amqpPub
		logger.Info("✅ connected to RabbitMQ")
	} else {
		publisher = events.NewInMemoryBus(logger)
	}

	st := store.New()
	st.Subscribe(func(topic store.Topic) {
		logger.Debug("store updated", zap.String("topic", string(topic)))
	})

	sheetsClient := sheets.NewClient(cfg.Sheets, logger)

	syncService := &service.SyncService{
		Sheets: sheetsClient,
		Store:  st,
		Repo:   overrideRepo,
		Events: publisher,
		Log:    logger,
	}

	adminService := &service.AdminService{
		Store:        st,
		Repo:         overrideRepo,
		Events:       publisher,
		Log:          logger,
		SupportEmail: cfg.Sync.SupportEmail,
	}
	adminService.InitializeDefaultTexts()

	authService := auth.NewService(cfg.Auth)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initial load plus persisted overrides, then the background refresh
	// loop. A failed fetch falls back to seed data, so startup never blocks
	// on the sheets being reachable.
	result := syncService.Bootstrap(ctx)
	logger.Info("initial catalog load complete",
		zap.Int("campaigns", result.Campaigns),
		zap.Int("products", result.Products),
		zap.Int("creators", result.Creators),
		zap.Int("exclusives", result.Exclusives),
		zap.Bool("fallback", result.Fallback))
	syncService.Start(ctx, cfg.Sync.RefreshInterval)

	campaignController := &controller.CampaignController{Store: st, Admin: adminService}
	catalogController := &controller.CatalogController{Store: st, Admin: adminService}
	authController := &controller.AuthController{Auth: authService}
	adminController := &controller.AdminController{Admin: adminService, Sync: syncService}
	debugController := &controller.DebugController{Sheets: sheetsClient}

	r := chi.NewRouter()

	r.Post("/auth/login", authController.Login)

	r.Get("/campaigns", campaignController.ListCampaigns)
	r.Get("/campaigns/{id}", campaignController.GetCampaign)
	r.Get("/campaigns/{id}/join-link", campaignController.JoinLink)

	r.Get("/products", catalogController.ListProducts)
	r.Get("/creators", catalogController.ListCreators)
	r.Get("/creators/featured", catalogController.ListFeaturedCreators)
	r.Get("/creators/{id}", catalogController.GetCreator)
	r.Get("/creators/{id}/collab-link", catalogController.CollabLink)
	r.Get("/exclusive-campaigns", catalogController.ListExclusiveCampaigns)
	r.Get("/texts", catalogController.ListTexts)
	r.Get("/notifications", catalogController.ListNotifications)
	r.Put("/notifications/{id}/read", catalogController.MarkNotificationRead)
	r.Get("/status", catalogController.Status)

	r.Route("/admin", func(r chi.Router) {
		r.Use(authService.RequireAdmin)

		r.Post("/refresh", adminController.Refresh)
		r.Get("/export", adminController.Export)
		r.Delete("/data", adminController.ClearAll)

		r.Post("/campaigns", adminController.CreateCampaign)
		r.Put("/campaigns/{id}", adminController.UpdateCampaign)
		r.Delete("/campaigns/{id}", adminController.DeleteCampaign)
		r.Patch("/campaigns/{id}/status", adminController.UpdateCampaignStatus)
		r.Put("/campaigns/{id}/more-info", adminController.UpdateCampaignMoreInfo)
		r.Put("/campaigns/{id}/notes", adminController.UpdateCampaignNotes)

		r.Post("/products", adminController.CreateProduct)
		r.Put("/products/{id}", adminController.ReplaceProduct)
		r.Delete("/products/{id}", adminController.DeleteProduct)

		r.Post("/creators", adminController.CreateCreator)
		r.Put("/creators/{id}", adminController.ReplaceCreator)
		r.Delete("/creators/{id}", adminController.DeleteCreator)

		r.Post("/texts", adminController.CreateText)
		r.Put("/texts/{id}", adminController.UpdateText)
		r.Post("/notifications", adminController.CreateNotification)
		r.Put("/settings", adminController.UpdateSettings)

		r.Get("/debug/sheets/{feed}", debugController.FeedInfo)
		r.Get("/debug/sheets/{feed}/validate", debugController.ValidateFeed)
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("🚀 server running", zap.Int("port", cfg.Server.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func newLogger() *zap.Logger {
	if os.Getenv("GO_ENV") == "production" {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return logger
}
