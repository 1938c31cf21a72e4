package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ManagerDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	dashboard, err := handler.dashboardService.BuildManagerDashboard(user)
	if err != nil {
		return respondPolicyError(c, err)
	}

	return c.JSON(dashboard)
}

func (handler *Handler) EmployeeDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	dashboard, err := handler.dashboardService.BuildEmployeeDashboard(user)
	if err != nil {
		return respondPolicyError(c, err)
	}

	return c.JSON(dashboard)
}
