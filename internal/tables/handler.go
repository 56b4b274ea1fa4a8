package tables

import (
	"fmt"
	"log"

	"restoflow-backend/internal/audit"
	"restoflow-backend/internal/httperr"
	"restoflow-backend/internal/models"
	"restoflow-backend/internal/pos"

	"github.com/gofiber/fiber/v2"
)

type TableRequest struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Seats  int    `json:"seats"`
	Status string `json:"status"`
}

func (r TableRequest) toModel() models.Table {
	return models.Table{
		ID:     r.ID,
		Name:   r.Name,
		Seats:  r.Seats,
		Status: models.TableStatus(r.Status),
	}
}

// GET /api/tables — the floor plan.
func ListTablesHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.Snapshot().Tables)
	}
}

// POST /api/admin/tables
func CreateTableHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body TableRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		snap, err := store.Dispatch(pos.AddTable{Table: body.toModel()})
		if err != nil {
			return httperr.FromDispatch(err)
		}

		created := snap.Tables[len(snap.Tables)-1]
		writeAudit(c, created.ID, models.AuditActionCreate,
			fmt.Sprintf("added table %q", created.Name), nil, created)

		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// PUT /api/admin/tables/:id
func UpdateTableHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body TableRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		body.ID = c.Params("id")

		before := findTable(store.Snapshot(), body.ID)

		snap, err := store.Dispatch(pos.UpdateTable{Table: body.toModel()})
		if err != nil {
			return httperr.FromDispatch(err)
		}

		after := findTable(snap, body.ID)
		writeAudit(c, body.ID, models.AuditActionUpdate,
			fmt.Sprintf("updated table %q", body.Name), before, after)

		return c.JSON(after)
	}
}

// DELETE /api/admin/tables/:id — refused while the table is occupied or
// reserved.
func DeleteTableHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		before := findTable(store.Snapshot(), id)

		if _, err := store.Dispatch(pos.DeleteTable{TableID: id}); err != nil {
			return httperr.FromDispatch(err)
		}

		writeAudit(c, id, models.AuditActionDelete, "removed table", before, nil)

		return c.SendStatus(fiber.StatusNoContent)
	}
}

func findTable(snap pos.Snapshot, id string) *models.Table {
	for i := range snap.Tables {
		if snap.Tables[i].ID == id {
			return &snap.Tables[i]
		}
	}
	return nil
}

func writeAudit(c *fiber.Ctx, entityID string, action models.AuditAction, desc string, before, after any) {
	userID, userName := audit.ActorFromCtx(c)
	err := audit.WriteLog(audit.LogOptions{
		UserID:      userID,
		UserName:    userName,
		EntityType:  "table",
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
