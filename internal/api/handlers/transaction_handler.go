package handlers

import (
	"spendlens/internal/dto"
	"spendlens/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	txService *service.TransactionService
	logger    *zap.Logger
}

func NewTransactionHandler(txService *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService: txService,
		logger:    logger,
	}
}

// Add godoc
// @Summary Add a transaction
// @Description Add a transaction for the authenticated user; missing fields are defaulted
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.AddTransactionRequest true "Transaction"
// @Security Bearer
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) Add(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.AddTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.txService.Add(c.Context(), userID, &req)
	if err != nil {
		h.logger.Error("Failed to add transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add transaction",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary List transactions
// @Description List the authenticated user's transactions, newest first
// @Tags transactions
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	transactions, err := h.txService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list transactions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list transactions",
		})
	}

	return c.JSON(transactions)
}

// Categories godoc
// @Summary List categories
// @Description List the distinct categories of the authenticated user's transactions
// @Tags transactions
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.CategoriesResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/transactions/categories [get]
func (h *TransactionHandler) Categories(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	categories, err := h.txService.Categories(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list categories", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list categories",
		})
	}

	return c.JSON(dto.CategoriesResponse{Categories: categories})
}

func getUserID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals("userID").(string)
	if !ok || userID == "" {
		return "", fiber.ErrUnauthorized
	}
	return userID, nil
}
