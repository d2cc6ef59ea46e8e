package handlers_fiber

import (
	"net/http"

	"github.com/iamcoreyg/dexo-docs/internal/api"
	"github.com/iamcoreyg/dexo-docs/internal/entities"
	"github.com/iamcoreyg/dexo-docs/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetReviews returns all reviews newest first.
func (h *Handler) GetReviews(c *fiber.Ctx) error {
	reviews, err := h.uc.ListReviews(c.Context())
	if err != nil {
		h.log.Errorw("failed to list reviews", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(reviews)
}

// PostReview records a document review.
func (h *Handler) PostReview(c *fiber.Ctx) error {
	var body api.CreateReviewRequest
	if err := c.BodyParser(&body); err != nil {
		return writeError(c, entities.ErrInvalidArgument)
	}

	review, err := h.uc.CreateReview(c.Context(), mapper.FromCreateReviewRequest(body))
	if err != nil {
		h.log.Errorw("failed to create review", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(review)
}

// GetReviewBySlug returns the latest review for a slug, or a JSON null
// body when the slug has never been reviewed (a 200, not a 404).
func (h *Handler) GetReviewBySlug(c *fiber.Ctx) error {
	review, err := h.uc.LatestReview(c.Context(), c.Params("slug"))
	if err != nil {
		h.log.Errorw("failed to get latest review", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(review)
}
