package catalog

import (
	"fmt"
	"log"

	"restoflow-backend/internal/audit"
	"restoflow-backend/internal/httperr"
	"restoflow-backend/internal/models"
	"restoflow-backend/internal/pos"

	"github.com/gofiber/fiber/v2"
)

type ProductRequest struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	NameAr    string            `json:"nameAr"`
	Price     float64           `json:"price"`
	Category  string            `json:"category"`
	Image     string            `json:"image"`
	Stock     int               `json:"stock"`
	SKU       string            `json:"sku"`
	Modifiers []models.Modifier `json:"availableModifiers"`
}

type UpdateStockRequest struct {
	Amount int `json:"amount"`
}

func (r ProductRequest) toModel() models.Product {
	return models.Product{
		ID:        r.ID,
		Name:      r.Name,
		NameAr:    r.NameAr,
		Price:     r.Price,
		Category:  r.Category,
		Image:     r.Image,
		Stock:     r.Stock,
		SKU:       r.SKU,
		Modifiers: r.Modifiers,
	}
}

// GET /api/products (any authenticated user)
func ListProductsHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap := store.Snapshot()
		if category := c.Query("category"); category != "" {
			filtered := make([]models.Product, 0, len(snap.Products))
			for _, p := range snap.Products {
				if p.Category == category {
					filtered = append(filtered, p)
				}
			}
			return c.JSON(filtered)
		}
		return c.JSON(snap.Products)
	}
}

// GET /api/categories
func ListCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(pos.Categories)
	}
}

// POST /api/admin/products (manager only)
func CreateProductHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		snap, err := store.Dispatch(pos.AddProduct{Product: body.toModel()})
		if err != nil {
			return httperr.FromDispatch(err)
		}

		created := snap.Products[len(snap.Products)-1]
		writeAudit(c, "product", created.ID, models.AuditActionCreate,
			fmt.Sprintf("created product %q", created.Name), nil, created)

		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// PUT /api/admin/products/:id
func UpdateProductHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		body.ID = c.Params("id")

		before := findProduct(store.Snapshot(), body.ID)

		snap, err := store.Dispatch(pos.UpdateProduct{Product: body.toModel()})
		if err != nil {
			return httperr.FromDispatch(err)
		}

		after := findProduct(snap, body.ID)
		writeAudit(c, "product", body.ID, models.AuditActionUpdate,
			fmt.Sprintf("updated product %q", body.Name), before, after)

		return c.JSON(after)
	}
}

// DELETE /api/admin/products/:id
func DeleteProductHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		before := findProduct(store.Snapshot(), id)

		if _, err := store.Dispatch(pos.DeleteProduct{ProductID: id}); err != nil {
			return httperr.FromDispatch(err)
		}

		writeAudit(c, "product", id, models.AuditActionDelete, "deleted product", before, nil)

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/admin/products/:id/stock — manual stock adjustment.
func UpdateStockHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateStockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		id := c.Params("id")
		before := findProduct(store.Snapshot(), id)

		snap, err := store.Dispatch(pos.UpdateStock{ProductID: id, Amount: body.Amount})
		if err != nil {
			return httperr.FromDispatch(err)
		}

		after := findProduct(snap, id)
		writeAudit(c, "product", id, models.AuditActionUpdate,
			fmt.Sprintf("adjusted stock by %d", body.Amount), before, after)

		return c.JSON(after)
	}
}

func findProduct(snap pos.Snapshot, id string) *models.Product {
	for i := range snap.Products {
		if snap.Products[i].ID == id {
			return &snap.Products[i]
		}
	}
	return nil
}

func writeAudit(c *fiber.Ctx, entityType, entityID string, action models.AuditAction, desc string, before, after any) {
	userID, userName := audit.ActorFromCtx(c)
	err := audit.WriteLog(audit.LogOptions{
		UserID:      userID,
		UserName:    userName,
		EntityType:  entityType,
		EntityID:    entityID,
		Action:      action,
		Description: desc,
		Before:      before,
		After:       after,
	})
	if err != nil {
		log.Printf("[WARN] %v", err)
	}
}
