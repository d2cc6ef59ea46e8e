package handlers_fiber

import (
	"net/http"

	"github.com/iamcoreyg/dexo-docs/internal/api"
	"github.com/iamcoreyg/dexo-docs/internal/entities"
	"github.com/iamcoreyg/dexo-docs/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetIssues lists issues filtered by the status query parameter, which
// defaults to open; status=all returns every row.
func (h *Handler) GetIssues(c *fiber.Ctx) error {
	issues, err := h.uc.ListIssues(c.Context(), c.Query("status", entities.StatusOpen))
	if err != nil {
		h.log.Errorw("failed to list issues", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(issues)
}

// PostIssue logs a documentation issue. Any status in the body is ignored;
// issues always start out open.
func (h *Handler) PostIssue(c *fiber.Ctx) error {
	var body api.CreateIssueRequest
	if err := c.BodyParser(&body); err != nil {
		return writeError(c, entities.ErrInvalidArgument)
	}

	issue, err := h.uc.CreateIssue(c.Context(), mapper.FromCreateIssueRequest(body))
	if err != nil {
		h.log.Errorw("failed to create issue", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(issue)
}

// PatchIssue updates status and resolution notes; a missing id yields a
// JSON null body with a 200, not a 404.
func (h *Handler) PatchIssue(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}

	var body api.UpdateIssueRequest
	if err := c.BodyParser(&body); err != nil {
		return writeError(c, entities.ErrInvalidArgument)
	}

	issue, err := h.uc.UpdateIssueStatus(c.Context(), id, mapper.FromUpdateIssueRequest(body))
	if err != nil {
		h.log.Errorw("failed to update issue", "error", err.Error(), "issue_id", id)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(issue)
}
