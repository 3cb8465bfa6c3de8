package service

import (
	"context"
	"time"

	"spendlens/internal/dto"
	"spendlens/internal/models"
	"spendlens/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReceiptService runs the receipt pipeline: OCR extraction, heuristic field
// parsing and, when configured, persisting the result as a transaction.
type ReceiptService struct {
	extractor   *TextExtractor
	parser      *ReceiptParser
	txRepo      *repository.TransactionRepository
	autoPersist bool
	logger      *zap.Logger
}

func NewReceiptService(
	extractor *TextExtractor,
	parser *ReceiptParser,
	txRepo *repository.TransactionRepository,
	autoPersist bool,
	logger *zap.Logger,
) *ReceiptService {
	return &ReceiptService{
		extractor:   extractor,
		parser:      parser,
		txRepo:      txRepo,
		autoPersist: autoPersist,
		logger:      logger,
	}
}

// ParseReceipt extracts and parses an uploaded receipt. It always yields a
// fully populated response; extraction failures degrade into parser defaults.
// With auto-persist enabled and a user identifier present, the parsed fields
// are also inserted as an Expense transaction; a failed insert is logged and
// the parse result is still returned.
func (s *ReceiptService) ParseReceipt(ctx context.Context, data []byte, fileName, userID string) *dto.ParseReceiptResponse {
	text := s.extractor.Extract(data, fileName)
	parsed := s.parser.Parse(text)

	s.logger.Info("Receipt parsed",
		zap.String("file", fileName),
		zap.Float64("amount", parsed.Amount),
		zap.String("category", parsed.Category),
	)

	resp := &dto.ParseReceiptResponse{
		Amount:        parsed.Amount,
		Category:      parsed.Category,
		Date:          parsed.Date,
		PaymentMethod: string(parsed.PaymentMethod),
		Description:   parsed.Description,
	}

	if !s.autoPersist || userID == "" {
		return resp
	}

	now := time.Now()
	tx := &models.Transaction{
		ID:            uuid.New(),
		UserID:        models.NormalizeUserKey(userID),
		Type:          models.TypeExpense,
		Amount:        parsed.Amount,
		Category:      parsed.Category,
		Date:          parsed.Date,
		PaymentMethod: parsed.PaymentMethod,
		Description:   parsed.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		s.logger.Warn("Failed to persist parsed receipt",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return resp
	}

	resp.UserID = userID
	resp.Persisted = true
	return resp
}
