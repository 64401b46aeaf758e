package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/handlers"
	"storefront/internal/logger"
	"storefront/internal/middleware"
	"storefront/internal/repositories"
	"storefront/internal/seed"
	"storefront/internal/services"
	"storefront/pkg/imagestore"
	"storefront/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the outside collaborators of the HTTP API.
type Deps struct {
	DB        *gorm.DB
	Uploader  imagestore.Uploader
	Publisher services.EventPublisher // nil disables order events
	Registry  *prometheus.Registry
}

// NewApp wires repositories, services and handlers into a Fiber app.
func NewApp(cfg *config.Config, deps Deps) *fiber.App {
	userRepo := repositories.NewGORMUserRepository(deps.DB)
	categoryRepo := repositories.NewGORMCategoryRepository(deps.DB)
	productRepo := repositories.NewGORMProductRepository(deps.DB)
	orderRepo := repositories.NewGORMOrderRepository(deps.DB)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	userService := services.NewUserService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	productService := services.NewProductService(productRepo, categoryService, deps.Uploader)
	orderService := services.NewOrderService(orderRepo, productRepo, userRepo, deps.Publisher)
	dashboardService := services.NewDashboardService(productRepo, userRepo, orderRepo)

	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.BodyLimitMB * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.NewMetrics(deps.Registry).Handler())
	app.Use(middleware.RequestLogger(logger.L()))

	app.Get("/health", func(c *fiber.Ctx) error {
		status := fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		}
		if sqlDB, err := deps.DB.DB(); err != nil || sqlDB.Ping() != nil {
			status["status"] = "degraded"
			return c.Status(fiber.StatusServiceUnavailable).JSON(status)
		}
		return c.JSON(status)
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	api := app.Group("/api", middleware.CORS())
	handlers.NewAuthHandler(authService).RegisterRoutes(api)
	handlers.NewUserHandler(userService).RegisterRoutes(api)
	handlers.NewCategoryHandler(categoryService).RegisterRoutes(api)
	handlers.NewProductHandler(productService).RegisterRoutes(api)
	handlers.NewOrderHandler(orderService).RegisterRoutes(api)
	handlers.NewDashboardHandler(dashboardService).RegisterRoutes(api)

	return app
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := seed.Run(db); err != nil {
			log.Fatal("seed failed", zap.Error(err))
		}
		log.Info("seed completed")
		return
	}

	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET is empty; issued tokens are signed with an empty key")
	}

	deps := Deps{
		DB: db,
		Uploader: imagestore.NewCloudinaryStore(imagestore.Config{
			CloudName: cfg.CloudinaryCloudName,
			APIKey:    cfg.CloudinaryAPIKey,
			APISecret: cfg.CloudinaryAPISecret,
			Folder:    cfg.CloudinaryFolder,
		}),
		Registry: prometheus.NewRegistry(),
	}
	deps.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatal("failed to initialize RabbitMQ client", zap.Error(err))
		}
		defer mqClient.Close()
		deps.Publisher = mqClient
	} else {
		log.Info("RABBITMQ_URL not set; order events are disabled")
	}

	app := NewApp(cfg, deps)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("starting server", zap.String("addr", cfg.AppPort))
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	<-quit
	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error("error during fiber shutdown", zap.Error(err))
	}
	log.Info("server gracefully stopped")
}
