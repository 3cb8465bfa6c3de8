package handlers

import (
	"spendlens/internal/dto"
	"spendlens/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type GoalHandler struct {
	goalService *service.GoalService
	logger      *zap.Logger
}

func NewGoalHandler(goalService *service.GoalService, logger *zap.Logger) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		logger:      logger,
	}
}

// Add godoc
// @Summary Add a savings goal
// @Description Add a savings goal for the authenticated user
// @Tags goals
// @Accept json
// @Produce json
// @Param request body dto.AddGoalRequest true "Goal"
// @Security Bearer
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/goals [post]
func (h *GoalHandler) Add(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.AddGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.goalService.Add(c.Context(), userID, &req)
	if err != nil {
		if err == service.ErrInvalidGoal {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to add goal", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add goal",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary List goals
// @Description List the authenticated user's goals, nearest deadline first
// @Tags goals
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.GoalResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/goals [get]
func (h *GoalHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	goals, err := h.goalService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list goals", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list goals",
		})
	}

	return c.JSON(goals)
}
