package main

import (
	"log"
	"strings"

	"restoflow-backend/internal/audit"
	"restoflow-backend/internal/auth"
	"restoflow-backend/internal/catalog"
	"restoflow-backend/internal/config"
	"restoflow-backend/internal/database"
	"restoflow-backend/internal/insights"
	"restoflow-backend/internal/kitchen"
	"restoflow-backend/internal/models"
	"restoflow-backend/internal/persistence"
	"restoflow-backend/internal/pos"
	"restoflow-backend/internal/shift"
	"restoflow-backend/internal/staff"
	"restoflow-backend/internal/tables"
	"restoflow-backend/internal/till"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	store := pos.NewStore(persistence.Load())
	store.OnCommit(persistence.Save)

	insightsSvc := insights.NewService(cfg.GeminiAPIKey)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-manager", auth.RegisterManagerHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Full snapshot for rendering
	protected.Get("/state", till.GetStateHandler(store))

	// Shift session
	protected.Post("/shift/start", shift.StartShiftHandler(store))
	protected.Post("/shift/end", shift.EndShiftHandler(store))
	protected.Get("/shift", shift.GetShiftHandler(store))

	// Till: table selection, cart, checkout
	protected.Post("/pos/table", till.SelectTableHandler(store))
	protected.Post("/pos/cart", till.AddToCartHandler(store))
	protected.Put("/pos/cart/:lineId", till.UpdateCartQtyHandler(store))
	protected.Delete("/pos/cart/:lineId", till.RemoveFromCartHandler(store))
	protected.Delete("/pos/cart", till.ClearCartHandler(store))
	protected.Get("/pos/cart/totals", till.CartTotalsHandler(store))
	protected.Post("/pos/orders", till.SubmitOrderHandler(store, cfg))
	protected.Post("/pos/receipt", till.PrintCartHandler(store, cfg))

	// Kitchen display
	protected.Get("/kitchen/orders", kitchen.ListActiveOrdersHandler(store))
	protected.Post("/kitchen/orders/:id/advance", kitchen.AdvanceOrderHandler(store))
	protected.Put("/orders/:id/status", kitchen.SetOrderStatusHandler(store))
	protected.Get("/orders", kitchen.ListOrdersHandler(store))

	// Read-only catalog, floor plan, roster
	protected.Get("/products", catalog.ListProductsHandler(store))
	protected.Get("/categories", catalog.ListCategoriesHandler())
	protected.Get("/tables", tables.ListTablesHandler(store))
	protected.Get("/staff", staff.ListStaffHandler(store))

	// Display settings
	protected.Post("/settings/theme/toggle", till.ToggleThemeHandler(store))
	protected.Put("/settings/language", till.SetLanguageHandler(store))
	protected.Put("/settings/view", till.SetViewHandler(store))

	// Manager-only administration
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleManager))

	adminRoutes.Post("/products", catalog.CreateProductHandler(store))
	adminRoutes.Put("/products/:id", catalog.UpdateProductHandler(store))
	adminRoutes.Delete("/products/:id", catalog.DeleteProductHandler(store))
	adminRoutes.Post("/products/:id/stock", catalog.UpdateStockHandler(store))

	adminRoutes.Post("/staff", staff.CreateStaffHandler(store))
	adminRoutes.Put("/staff/:id", staff.UpdateStaffHandler(store))
	adminRoutes.Delete("/staff/:id", staff.DeleteStaffHandler(store))

	adminRoutes.Post("/tables", tables.CreateTableHandler(store))
	adminRoutes.Put("/tables/:id", tables.UpdateTableHandler(store))
	adminRoutes.Delete("/tables/:id", tables.DeleteTableHandler(store))

	adminRoutes.Get("/insights", insights.GetInsightsHandler(store, insightsSvc))
	adminRoutes.Get("/sales-summary", insights.SalesSummaryHandler(store))

	// Audit trail
	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("server listening on port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
