package httperr

import (
	"errors"

	"restoflow-backend/internal/pos"

	"github.com/gofiber/fiber/v2"
)

// FromDispatch translates a rejected intent into a fiber error. Guard
// rejections are conflicts, bad payloads are 400s, missing entities are
// 404s; anything unexpected bubbles up as a 500.
func FromDispatch(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pos.ErrProductNotFound),
		errors.Is(err, pos.ErrModifierNotFound),
		errors.Is(err, pos.ErrTableNotFound),
		errors.Is(err, pos.ErrLineNotFound),
		errors.Is(err, pos.ErrOrderNotFound),
		errors.Is(err, pos.ErrStaffNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, pos.ErrCashierRequired),
		errors.Is(err, pos.ErrNegativeCash),
		errors.Is(err, pos.ErrInvalidProduct),
		errors.Is(err, pos.ErrInvalidTable),
		errors.Is(err, pos.ErrInvalidStaff):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, pos.ErrCredentialNeeded):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, pos.ErrShiftClosed),
		errors.Is(err, pos.ErrShiftAlreadyOpen),
		errors.Is(err, pos.ErrOutOfStock),
		errors.Is(err, pos.ErrInsufficientStock),
		errors.Is(err, pos.ErrEmptyCart),
		errors.Is(err, pos.ErrTableNotIdle),
		errors.Is(err, pos.ErrOrderCompleted),
		errors.Is(err, pos.ErrBackwardTransition),
		errors.Is(err, pos.ErrDuplicateProduct),
		errors.Is(err, pos.ErrDuplicateStaff),
		errors.Is(err, pos.ErrDuplicateTable),
		errors.Is(err, pos.ErrNegativeStock):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return err
	}
}
