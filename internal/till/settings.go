package till

import (
	"restoflow-backend/internal/httperr"
	"restoflow-backend/internal/models"
	"restoflow-backend/internal/pos"

	"github.com/gofiber/fiber/v2"
)

// Display flags: theme, language and the active view. No business
// invariant hangs off any of these.

type SetLanguageRequest struct {
	Language string `json:"language"`
}

type SetViewRequest struct {
	View string `json:"view"`
}

// POST /api/settings/theme/toggle
func ToggleThemeHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := store.Dispatch(pos.ToggleTheme{})
		if err != nil {
			return httperr.FromDispatch(err)
		}
		return c.JSON(fiber.Map{"theme": snap.Theme})
	}
}

// PUT /api/settings/language
func SetLanguageHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SetLanguageRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		lang := models.Language(body.Language)
		if lang != models.LangEnglish && lang != models.LangArabic {
			return fiber.NewError(fiber.StatusBadRequest, "unsupported language")
		}
		snap, err := store.Dispatch(pos.SetLanguage{Language: lang})
		if err != nil {
			return httperr.FromDispatch(err)
		}
		return c.JSON(fiber.Map{"language": snap.Language})
	}
}

// PUT /api/settings/view
func SetViewHandler(store *pos.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SetViewRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		view := models.View(body.View)
		if view != models.ViewPOS && view != models.ViewKDS && view != models.ViewAdmin {
			return fiber.NewError(fiber.StatusBadRequest, "unknown view")
		}
		snap, err := store.Dispatch(pos.SetView{View: view})
		if err != nil {
			return httperr.FromDispatch(err)
		}
		return c.JSON(fiber.Map{"view": snap.View})
	}
}
