package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	auth := app.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh", handler.Refresh)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Get("/team", handler.AuthRequired, handler.Team)

	feedback := app.Group("/api/feedback", handler.AuthRequired)
	feedback.Get("", handler.ListFeedback)
	feedback.Post("", handler.CreateFeedback)
	feedback.Patch("/:id/acknowledge", handler.AcknowledgeFeedback)

	dashboard := app.Group("/api/dashboard", handler.AuthRequired)
	dashboard.Get("/manager", handler.ManagerOnly, handler.ManagerDashboard)
	dashboard.Get("/employee", handler.EmployeeDashboard)
}
