package handlers_fiber

import "github.com/gofiber/fiber/v2"

// Register attaches all API routes to the app. The auth gate and the other
// app-level middlewares are installed by the caller before registration.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/auth", h.GetAuth)

	api := app.Group("/api")
	api.Get("/reviews", h.GetReviews)
	api.Post("/reviews", h.PostReview)
	api.Get("/reviews/:slug", h.GetReviewBySlug)
	api.Get("/issues", h.GetIssues)
	api.Post("/issues", h.PostIssue)
	api.Patch("/issues/:id", h.PatchIssue)
	api.Get("/gaps", h.GetGaps)
	api.Post("/gaps", h.PostGap)
	api.Patch("/gaps/:id", h.PatchGap)
	api.Get("/stats", h.GetStats)
}
