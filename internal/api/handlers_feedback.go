package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhachhotu/feedback/internal/models"
	"github.com/jhachhotu/feedback/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) ListFeedback(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	scope, err := services.ListFeedbackScope(user, parseQueryFlag(c.Query("all")))
	if err != nil {
		return respondPolicyError(c, err)
	}

	feedbacks, err := handler.repositories.Feedbacks.FindByScope(scope)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch feedback")
	}

	return c.JSON(feedbacks)
}

func (handler *Handler) CreateFeedback(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := services.FeedbackInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if fieldErrors := services.ValidateFeedbackInput(&input); len(fieldErrors) > 0 {
		return apiValidationError(c, fieldErrors)
	}

	employee, err := handler.repositories.Users.FindByID(input.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "employee not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load employee")
	}

	if err := services.CanCreateFeedback(user, &employee); err != nil {
		return respondPolicyError(c, err)
	}

	feedback := models.Feedback{
		ManagerID:        user.ID,
		EmployeeID:       employee.ID,
		Strengths:        input.Strengths,
		ImprovementAreas: input.ImprovementAreas,
		Sentiment:        input.Sentiment,
		CreatedAt:        time.Now(),
	}
	if err := handler.repositories.Feedbacks.Create(&feedback); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create feedback")
	}

	return c.Status(fiber.StatusCreated).JSON(feedback)
}

func (handler *Handler) AcknowledgeFeedback(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	feedbackID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid feedback id")
	}

	feedback, err := handler.repositories.Feedbacks.FindByID(uint(feedbackID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "feedback not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load feedback")
	}

	if err := services.CanAcknowledge(user, &feedback); err != nil {
		return respondPolicyError(c, err)
	}

	acknowledged, err := handler.repositories.Feedbacks.Acknowledge(feedback.ID, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to acknowledge feedback")
	}

	return c.JSON(acknowledged)
}
