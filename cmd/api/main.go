package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"campus-helper/internal/config"
	"campus-helper/internal/handler"
	"campus-helper/internal/middleware"
	"campus-helper/internal/pkg/i18n"
	"campus-helper/internal/repository"
	"campus-helper/internal/repository/memory"
	"campus-helper/internal/service"
	"campus-helper/internal/service/auth"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	config.SetupLogger(cfg)

	if envErr != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	if err := i18n.LoadTranslations(cfg.LocalesPath); err != nil {
		log.Warn().Err(err).Str("path", cfg.LocalesPath).Msg("failed to load translations")
	}
	i18n.SetDefaultLocale(cfg.DefaultLocale)

	var repos *repository.Repositories
	switch cfg.StoreDriver {
	case "memory":
		log.Warn().Msg("using in-memory store; data is not persisted")
		repos = memory.NewStore().Repositories()
	default:
		db, err := config.NewPostgresDB(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()
		repos = repository.NewRepositories(db)
	}

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	if redis != nil {
		defer redis.Close()
	} else {
		log.Info().Msg("Redis not configured; caching disabled")
	}

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("failed to connect to MinIO; item images will be omitted")
		minioClient = nil
	}

	services := service.NewServices(repos, redis, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Accept-Language, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")
	v1.Get("/home", h.Home.Highlights)

	protected := v1.Group("", middleware.AuthRequired(authService))

	forum := protected.Group("/forum")
	forum.Get("/posts/:postId", h.Forum.GetPost)
	forum.Get("/posts/:postId/comments", h.Forum.ListComments)
	forum.Post("/posts/:postId/comments", h.Forum.Reply)
	forum.Post("/posts/:postId/reports", h.Forum.ReportPost)
	forum.Post("/comments/:commentId/reports", h.Forum.ReportComment)

	items := protected.Group("/marketplace/items")
	items.Get("/:itemId", h.Marketplace.GetItem)
	items.Get("/:itemId/reviews", h.Marketplace.ListReviews)
	items.Post("/:itemId/reviews", h.Marketplace.SubmitReview)
	items.Post("/:itemId/reports", h.Marketplace.ReportItem)
	items.Post("/:itemId/contact", h.Marketplace.Contact)
}
