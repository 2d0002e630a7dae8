package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/foco-sales/foco-backend/database"
	"github.com/foco-sales/foco-backend/internal/cache"
	"github.com/foco-sales/foco-backend/internal/jobs"
	"github.com/foco-sales/foco-backend/internal/models"
	"github.com/foco-sales/foco-backend/internal/routes"
	"github.com/foco-sales/foco-backend/internal/services"
	"github.com/foco-sales/foco-backend/internal/storage"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(".env"); err != nil {
		_ = godotenv.Load("environments/.env.development")
	}

	zlog := newLogger()
	defer zlog.Sync()

	// Initialize storage
	var store storage.Store

	if os.Getenv("USE_MEMORY_STORE") == "true" {
		zlog.Warn("using in-memory storage (not for production)")
		store = storage.NewMemoryStore()
	} else {
		zlog.Info("connecting to PostgreSQL database")
		if err := database.Connect(); err != nil {
			zlog.Fatal("database connection failed", zap.Error(err))
		}

		if err := database.DB.AutoMigrate(
			&models.Salesperson{},
			&models.Conversation{},
			&models.ScriptStep{},
		); err != nil {
			zlog.Fatal("database migration failed", zap.Error(err))
		}
		zlog.Info("database migrations completed")

		store = storage.NewDatabaseStore(database.DB)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := storage.SeedDemoData(store); err != nil {
			zlog.Fatal("failed to seed demo data", zap.Error(err))
		}
		zlog.Info("demo data seeded")
	}

	// Optional Redis-backed metrics cache
	var metricsCache *cache.MetricsCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := client.Ping(ctx).Err(); err != nil {
			zlog.Warn("redis unreachable, metrics cache disabled", zap.Error(err))
		} else {
			metricsCache = cache.NewMetricsCache(client, time.Minute)
			zlog.Info("metrics cache enabled", zap.String("addr", addr))
		}
		cancel()
	}

	// Start the metrics snapshot job
	snapshotJob := jobs.NewSnapshotJob(
		services.NewMetricsService(store),
		metricsCache,
		zlog,
		snapshotInterval(),
	)
	snapshotJob.Start()

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "FOCO Sales Dashboard Backend v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	routes.SetupRoutes(app, store, metricsCache, zlog, storageMode())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		zlog.Info("shutting down")
		snapshotJob.Stop()
		_ = app.Shutdown()
	}()

	zlog.Info("starting server",
		zap.String("port", port),
		zap.String("storage", storageMode()),
	)
	if err := app.Listen(":" + port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger() *zap.Logger {
	if os.Getenv("ENVIRONMENT") == "development" {
		return zap.Must(zap.NewDevelopment())
	}
	return zap.Must(zap.NewProduction())
}

func storageMode() string {
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		return "in-memory"
	}
	return "postgres"
}

func snapshotInterval() time.Duration {
	if raw := os.Getenv("SNAPSHOT_INTERVAL_MINUTES"); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return 15 * time.Minute
}
