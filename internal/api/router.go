package api

import (
	"os"
	"path/filepath"

	"nyaay-saathi/docs"
	"nyaay-saathi/internal/api/handlers"
	"nyaay-saathi/pkg/auth"
	"nyaay-saathi/pkg/config"
	"nyaay-saathi/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	cfg *config.Config,
	chatHandler *handlers.ChatHandler,
	legalHandler *handlers.LegalHandler,
	authHandler *handlers.AuthHandler,
	historyHandler *handlers.HistoryHandler,
	docHandler *handlers.DocumentHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.Server.BodyLimit,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
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
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	if webStaticPath := findWebStaticPath(appLogger); webStaticPath != "" {
		appLogger.Info("Serving static files", zap.String("path", webStaticPath))
		app.Static("/static", webStaticPath)
		app.Get("/", func(c *fiber.Ctx) error {
			return c.SendFile(filepath.Join(webStaticPath, "index.html"))
		})
	} else {
		appLogger.Warn("Web static directory not found, static files will not be served")
	}

	secure := !cfg.Server.Debug
	api := app.Group("/api", middleware.Session(cfg.JWT.Expiration, secure))

	// Chat
	api.Post("/chat", chatHandler.Chat)
	api.Post("/reset", chatHandler.Reset)
	api.Post("/simplify", chatHandler.Simplify)
	api.Get("/faqs", chatHandler.FAQs)
	api.Post("/detect_language", chatHandler.DetectLanguage)
	api.Post("/identify_jargon", chatHandler.IdentifyJargon)
	api.Get("/legal_terms/:language", chatHandler.LegalTerms)

	// Reference data
	api.Get("/languages", legalHandler.Languages)
	api.Post("/nearby_resources", legalHandler.NearbyResources)
	api.Get("/legal_codes", legalHandler.LegalCodes)
	api.Get("/ipc_sections", legalHandler.IPCSections)

	// Accounts
	api.Post("/login", authHandler.Login)
	api.Post("/register", authHandler.Register)
	api.Post("/logout", authHandler.Logout)
	api.Get("/user",
		middleware.AuthMiddleware(jwtManager, appLogger, fiber.Map{"logged_in": false}),
		authHandler.CurrentUser,
	)

	// Saved chats
	requireLogin := middleware.AuthMiddleware(jwtManager, appLogger, fiber.Map{
		"success": false,
		"message": "Not logged in",
	})
	api.Post("/save_chat", requireLogin, historyHandler.SaveChat)
	api.Get("/chat_history", requireLogin, historyHandler.ChatHistory)
	api.Get("/chat/:id", requireLogin, historyHandler.GetChat)
	api.Delete("/chat/:id", requireLogin, historyHandler.DeleteChat)

	// Documents
	api.Get("/document_templates", docHandler.ListTemplates)
	api.Get("/document_template/:id", docHandler.GetTemplate)
	api.Post("/generate_document", docHandler.GenerateDocument)
	api.Post("/generate_document_pdf", docHandler.GenerateDocumentPDF)
	api.Get("/legal_timeline/:id", docHandler.GetTimeline)
	api.Post("/upload-document", docHandler.UploadDocument)

	return app
}

// findWebStaticPath looks for web/static/index.html near the working directory.
func findWebStaticPath(logger *zap.Logger) string {
	paths := []string{
		"web/static",
		"../web/static",
		"../../web/static",
	}

	for _, path := range paths {
		if fileExists(filepath.Join(path, "index.html")) {
			return path
		}
		logger.Debug("Tried path", zap.String("path", path))
	}

	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
