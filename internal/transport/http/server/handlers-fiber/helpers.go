package handlers_fiber

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/iamcoreyg/dexo-docs/internal/api"
	"github.com/iamcoreyg/dexo-docs/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// writeError maps sentinel errors to statuses. There is no not-found
// branch: missing rows are reported as null bodies, not errors, and
// anything else (including constraint violations) surfaces as a 500.
func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	if errors.Is(err, entities.ErrInvalidArgument) {
		status = http.StatusBadRequest
	}
	return c.Status(status).JSON(api.ErrorResponse{Error: err.Error()})
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, entities.ErrInvalidArgument
	}
	return id, nil
}
