package handlers_fiber

import (
	"net/http"

	"github.com/iamcoreyg/dexo-docs/internal/api"
	"github.com/iamcoreyg/dexo-docs/internal/entities"
	"github.com/iamcoreyg/dexo-docs/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetGaps lists gaps with the same filter semantics as issues: status
// defaults to open, status=all returns every row.
func (h *Handler) GetGaps(c *fiber.Ctx) error {
	gaps, err := h.uc.ListGaps(c.Context(), c.Query("status", entities.StatusOpen))
	if err != nil {
		h.log.Errorw("failed to list gaps", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(gaps)
}

// PostGap logs a documentation gap found via a support ticket. Gaps always
// start out open.
func (h *Handler) PostGap(c *fiber.Ctx) error {
	var body api.CreateGapRequest
	if err := c.BodyParser(&body); err != nil {
		return writeError(c, entities.ErrInvalidArgument)
	}

	gap, err := h.uc.CreateGap(c.Context(), mapper.FromCreateGapRequest(body))
	if err != nil {
		h.log.Errorw("failed to create gap", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(gap)
}

// PatchGap updates status and the created-doc hint; a missing id yields a
// JSON null body with a 200, not a 404.
func (h *Handler) PatchGap(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}

	var body api.UpdateGapRequest
	if err := c.BodyParser(&body); err != nil {
		return writeError(c, entities.ErrInvalidArgument)
	}

	gap, err := h.uc.UpdateGap(c.Context(), id, mapper.FromUpdateGapRequest(body))
	if err != nil {
		h.log.Errorw("failed to update gap", "error", err.Error(), "gap_id", id)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(gap)
}
