package staff

import (
	"fmt"
	"log"

	"restoflow-backend/internal/audit"
	"restoflow-backend/internal/httperr"
	"restoflow-backend/internal/models"
	"restoflow-backend/internal/pos"

	"github.com/gofiber/fiber/v2"
)

type StaffRequest struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

func (r StaffRequest) toModel() models.Staff {
	return models.Staff{
		ID:     r.ID,
		Name:   r.Name,
		Role:   models.Role(r.Role),
		Phone:  r.Phone,
		Status: models.StaffStatus(r.Status),
	}
}

// GET /api/staff
func ListStaffHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.Snapshot().Staff)
	}
}

// POST /api/admin/staff
func CreateStaffHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body StaffRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		snap, err := store.Dispatch(pos.AddStaff{Staff: body.toModel()})
		if err != nil {
			return httperr.FromDispatch(err)
		}

		created := snap.Staff[len(snap.Staff)-1]
		writeAudit(c, created.ID, models.AuditActionCreate,
			fmt.Sprintf("added staff member %q", created.Name), nil, created)

		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// PUT /api/admin/staff/:id
func UpdateStaffHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body StaffRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		body.ID = c.Params("id")

		before := findStaff(store.Snapshot(), body.ID)

		snap, err := store.Dispatch(pos.UpdateStaff{Staff: body.toModel()})
		if err != nil {
			return httperr.FromDispatch(err)
		}

		after := findStaff(snap, body.ID)
		writeAudit(c, body.ID, models.AuditActionUpdate,
			fmt.Sprintf("updated staff member %q", body.Name), before, after)

		return c.JSON(after)
	}
}

// DELETE /api/admin/staff/:id
func DeleteStaffHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		before := findStaff(store.Snapshot(), id)

		if _, err := store.Dispatch(pos.DeleteStaff{StaffID: id}); err != nil {
			return httperr.FromDispatch(err)
		}

		writeAudit(c, id, models.AuditActionDelete, "removed staff member", before, nil)

		return c.SendStatus(fiber.StatusNoContent)
	}
}

func findStaff(snap pos.Snapshot, id string) *models.Staff {
	for i := range snap.Staff {
		if snap.Staff[i].ID == id {
			return &snap.Staff[i]
		}
	}
	return nil
}

func writeAudit(c *fiber.Ctx, entityID string, action models.AuditAction, desc string, before, after any) {
	userID, userName := audit.ActorFromCtx(c)
	err := audit.WriteLog(audit.LogOptions{
		UserID:      userID,
		UserName:    userName,
		EntityType:  "staff",
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
