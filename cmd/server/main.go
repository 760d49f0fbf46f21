package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"news-crud/internal/admin"
	"news-crud/internal/audit"
	"news-crud/internal/config"
	"news-crud/internal/event"
	"news-crud/internal/handler"
	"news-crud/internal/infrastructure/database"
	"news-crud/internal/logger"
	"news-crud/internal/metrics"
	"news-crud/internal/middleware"
	"news-crud/internal/repository"
	"news-crud/internal/service"
	"news-crud/internal/storage/media"
	"news-crud/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.SetLogger(logger.New(os.Stdout, cfg.LogLevel))

	// Apply schema migrations
	if cfg.MigrateOnStart {
		version, err := database.Migrate(cfg.DSN(), cfg.MigrationsPath, 0)
		if err != nil {
			logger.Fatal("Failed to apply migrations",
				slog.String("error", err.Error()))
		}
		logger.Info("Migrations applied", slog.Uint64("version", uint64(version)))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Optional integrations fall back to no-ops when unconfigured
	healthExtras := map[string]handler.Pinger{}

	var publisher event.Publisher = event.NopPublisher{}
	if cfg.RabbitURI != "" {
		rp, err := event.NewRabbitPublisher(cfg.RabbitURI, cfg.RabbitExchange, cfg.RabbitRoutingKey)
		if err != nil {
			logger.Fatal("Failed to connect to RabbitMQ",
				slog.String("error", err.Error()))
		}
		publisher = rp
		logger.Info("Article events enabled", slog.String("exchange", cfg.RabbitExchange))
	}
	defer publisher.Close()

	var recorder audit.Recorder = audit.NopRecorder{}
	if cfg.MongoURI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		mr, err := audit.NewMongoRecorder(ctx, cfg.MongoURI, cfg.MongoDBName, cfg.MongoCollection)
		cancel()
		if err != nil {
			logger.Fatal("Failed to connect to MongoDB",
				slog.String("error", err.Error()))
		}
		recorder = mr
		healthExtras["audit"] = mr
		logger.Info("Audit trail enabled", slog.String("collection", cfg.MongoCollection))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := recorder.Close(ctx); err != nil {
			logger.Error("Failed to close audit recorder",
				slog.String("error", err.Error()))
		}
	}()

	var uploads media.Uploader = media.Disabled{}
	if cfg.S3Endpoint != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		storage, err := media.New(ctx, media.Config{
			Endpoint:      cfg.S3Endpoint,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			Bucket:        cfg.S3Bucket,
			PublicBaseURL: cfg.S3PublicBaseURL,
			PresignTTL:    cfg.S3PresignTTL,
		})
		cancel()
		if err != nil {
			logger.Fatal("Failed to initialise media storage",
				slog.String("error", err.Error()))
		}
		uploads = storage
		logger.Info("Media uploads enabled", slog.String("bucket", cfg.S3Bucket))
	}

	// Initialize repositories
	articleRepo := repository.NewPostgresArticleRepository(pool)
	taxonomyRepo := repository.NewPostgresTaxonomyRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	articleService := service.NewArticleService(articleRepo, v, publisher, recorder, cfg.DefaultPageSize, cfg.MaxPageSize)
	publicationService := service.NewPublicationService(articleRepo, cfg.DefaultPageSize, cfg.MaxPageSize)
	fetchService := service.NewFetchService(taxonomyRepo, cfg.FetchPageSize)
	exportService := service.NewExportService(articleRepo)

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(articleService, fetchService, uploads, v)
	publicHandler := handler.NewPublicArticleHandler(publicationService)
	exportHandler := handler.NewExportHandler(exportService)
	healthHandler := handler.NewHealthHandler(pool, healthExtras)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Admin panel routes
	panel := admin.ArticlePanel(cfg.RoutePrefix, time.Now())
	articles := router.Group(panel.Route, middleware.AdminAuth(cfg.AdminJWTSecret))
	{
		articles.GET("/export", exportHandler.StreamExport)
		articles.GET("/:id/history", articleHandler.History)
		articles.POST("/media/upload-url", articleHandler.UploadURL)

		for _, r := range admin.Register(articles, panel, articleHandler) {
			logger.Debug("Admin route registered",
				slog.String("operation", string(r.Operation)),
				slog.String("method", r.Method),
				slog.String("path", panel.Route+r.Path))
		}
	}
	if cfg.AdminJWTSecret == "" {
		logger.Warn("ADMIN_JWT_SECRET is empty, admin routes are unauthenticated")
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		public := v1.Group("/articles")
		{
			public.GET("", publicHandler.List)
			public.GET("/earliest", publicHandler.Earliest)
			public.GET("/latest", publicHandler.Latest)
			public.GET("/:slug", publicHandler.Show)
			public.GET("/:slug/previous", publicHandler.Previous)
			public.GET("/:slug/next", publicHandler.Next)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
