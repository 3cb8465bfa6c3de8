package handlers

import (
	"io"

	"spendlens/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReceiptHandler struct {
	receiptService *service.ReceiptService
	logger         *zap.Logger
}

func NewReceiptHandler(receiptService *service.ReceiptService, logger *zap.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		logger:         logger,
	}
}

// ParseReceipt godoc
// @Summary Parse a receipt
// @Description Extract amount, date, category, payment method and description from an uploaded receipt image or PDF
// @Tags receipts
// @Accept multipart/form-data
// @Produce json
// @Param receipt formData file true "Receipt file (image or PDF)"
// @Param userId formData string false "User identifier for auto-persisting the parsed transaction"
// @Success 200 {object} dto.ParseReceiptResponse
// @Failure 400 {object} map[string]string
// @Router /receipts/parse [post]
func (h *ReceiptHandler) ParseReceipt(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("receipt")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file provided",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read file",
		})
	}

	h.logger.Info("Receipt received",
		zap.String("file", fileHeader.Filename),
		zap.Int64("size", fileHeader.Size),
	)

	resp := h.receiptService.ParseReceipt(c.Context(), data, fileHeader.Filename, c.FormValue("userId"))
	return c.JSON(resp)
}
