package handlers

import (
	"strings"

	"spendlens/internal/dto"
	"spendlens/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type InsightHandler struct {
	insightService *service.InsightService
	logger         *zap.Logger
}

func NewInsightHandler(insightService *service.InsightService, logger *zap.Logger) *InsightHandler {
	return &InsightHandler{
		insightService: insightService,
		logger:         logger,
	}
}

// Summary godoc
// @Summary Generate a financial summary
// @Description Aggregate the user's transactions into monthly trends and generate a short financial report
// @Tags insights
// @Accept json
// @Produce json
// @Param request body dto.SummaryRequest true "Summary request"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} dto.SummaryResponse
// @Failure 500 {object} dto.SummaryResponse
// @Router /insights/summary [post]
func (h *InsightHandler) Summary(c *fiber.Ctx) error {
	var req dto.SummaryRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.UserID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.SummaryResponse{
			Summary: "No userId provided",
		})
	}

	summary, err := h.insightService.Summarize(c.Context(), req.UserID)
	if err != nil {
		// Internal detail stays in the logs, never in the response body.
		h.logger.Error("Summary generation failed",
			zap.String("user_id", req.UserID),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.SummaryResponse{
			Summary: "Server error occurred.",
		})
	}

	return c.JSON(dto.SummaryResponse{Summary: summary})
}
