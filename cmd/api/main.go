package main

import (
	"context"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"fricoach/internal/cache"
	"fricoach/internal/config"
	"fricoach/internal/database"
	"fricoach/internal/database/migration"
	handlers "fricoach/internal/http/handler"
	"fricoach/internal/http/middleware"
	"fricoach/internal/llm"
	"fricoach/internal/otel"
	"fricoach/internal/repository/postgres"
	"fricoach/internal/service"
	"fricoach/internal/storage"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		logger.Fatal("failed to initialize object storage", zap.Error(err))
	}

	// FRI cache is optional; without Redis every snapshot is computed per request
	var friCache cache.FRICache
	if cfg.Redis.Addr != "" {
		friCache, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable, fri caching disabled", zap.Error(err))
			friCache = nil
		}
	}

	// Gemini is optional; without a key the deterministic fallback coach answers
	var gen llm.Generator
	if cfg.LLM.APIKey != "" {
		gen, err = llm.NewGemini(ctx, cfg.LLM)
		if err != nil {
			logger.Warn("gemini unavailable, using fallback coach", zap.Error(err))
			gen = nil
		}
	}

	// Initialize repositories and services
	convRepo := postgres.NewConversationPostgres(db)
	coachSvc := service.NewCoachService(convRepo, objStore, friCache, gen, logger)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Prometheus registry with standard process/Go collectors plus HTTP metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		logger.Fatal("failed to register http metrics", zap.Error(err))
	}

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))
	app.Use(promMiddleware.Handler())
	app.Use(otelfiber.Middleware())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, db, coachSvc)

	addr := ":" + cfg.Port

	logger.Info("server_starting", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
