package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-stockdocs/internal/handler"
	"go-stockdocs/internal/middleware"
	"go-stockdocs/internal/model"
	"go-stockdocs/internal/repository"
	"go-stockdocs/internal/service"
	"go-stockdocs/internal/ws"
	"go-stockdocs/pkg/database"
	"go-stockdocs/pkg/token"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup database
	db := database.ConnectDB()
	db.AutoMigrate(&model.User{}, &model.Supplier{}, &model.Product{}, &model.ProductEntry{}, &model.Document{})

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup websocket hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Token signing config is resolved once and passed down explicitly
	tokens := token.NewManager(token.ConfigFromEnv("go-stockdocs"))

	// 6. Dependency injection (wiring layers)
	userRepo := repository.NewUserRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	productRepo := repository.NewProductRepo(db)
	entryRepo := repository.NewEntryRepo(db)
	documentRepo := repository.NewDocumentRepo(db)

	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userService, tokens)
	catalogService := service.NewCatalogService(supplierRepo, productRepo)
	entryService := service.NewEntryService(entryRepo, productRepo, supplierRepo, wsHub)
	documentService := service.NewDocumentService(documentRepo, userRepo, productRepo, wsHub)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	supplierHandler := handler.NewSupplierHandler(catalogService)
	productHandler := handler.NewProductHandler(catalogService)
	entryHandler := handler.NewEntryHandler(entryService)
	documentHandler := handler.NewDocumentHandler(documentService)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:   "StockDocs API v1.0",
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(logger.New())  // Request logging
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 8. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo, tokens))

	protected.Get("/auth/whoami", authHandler.Whoami)

	protected.Get("/users", userHandler.GetUsers)
	protected.Get("/users/:id", userHandler.GetUser)
	protected.Post("/users", userHandler.CreateUser)
	protected.Put("/users/:id", userHandler.UpdateUser)
	protected.Delete("/users/:id", userHandler.DeleteUser)

	protected.Get("/suppliers", supplierHandler.GetSuppliers)
	protected.Get("/suppliers/:id", supplierHandler.GetSupplier)
	protected.Post("/suppliers", supplierHandler.CreateSupplier)
	protected.Put("/suppliers/:id", supplierHandler.UpdateSupplier)
	protected.Delete("/suppliers/:id", supplierHandler.DeleteSupplier)

	protected.Get("/products", productHandler.GetProducts)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Post("/products", productHandler.CreateProduct)
	protected.Put("/products/:id", productHandler.UpdateProduct)
	protected.Delete("/products/:id", productHandler.DeleteProduct)

	protected.Get("/product-entries", entryHandler.GetEntries)
	protected.Get("/product-entries/:id", entryHandler.GetEntry)
	protected.Post("/product-entries", entryHandler.CreateEntry)
	protected.Delete("/product-entries/:id", entryHandler.DeleteEntry)

	protected.Get("/documents", documentHandler.GetDocuments)
	protected.Get("/documents/:id", documentHandler.GetDocument)
	protected.Get("/documents/:id/download", documentHandler.DownloadDocument)
	protected.Post("/documents", documentHandler.UploadDocument)
	protected.Delete("/documents/:id", documentHandler.DeleteDocument)

	// Websocket route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 9. Graceful shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin user if it doesn't exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByEmail("admin@example.com"); err == nil {
		return
	}

	admin := &model.User{
		UID:      uuid.New().String(),
		Email:    "admin@example.com",
		FullName: "Administrator",
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword("admin123"); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("Admin user created: admin@example.com / admin123")
	}
}
