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

type TransactionService struct {
	txRepo *repository.TransactionRepository
	logger *zap.Logger
}

func NewTransactionService(txRepo *repository.TransactionRepository, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		txRepo: txRepo,
		logger: logger,
	}
}

// Add inserts a transaction, substituting defaults for missing fields so a
// partially filled receipt parse can be saved as-is.
func (s *TransactionService) Add(ctx context.Context, userID string, req *dto.AddTransactionRequest) (*dto.TransactionResponse, error) {
	txType := models.TransactionType(req.Type)
	if txType != models.TypeIncome && txType != models.TypeExpense {
		txType = models.TypeExpense
	}
	category := req.Category
	if category == "" {
		category = "Other"
	}
	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	paymentMethod := models.PaymentMethod(req.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = models.PaymentOthers
	}
	description := req.Description
	if description == "" {
		description = "Auto-added from receipt"
	}

	now := time.Now()
	tx := &models.Transaction{
		ID:            uuid.New(),
		UserID:        models.NormalizeUserKey(userID),
		Type:          txType,
		Amount:        req.Amount,
		Category:      category,
		Date:          date,
		PaymentMethod: paymentMethod,
		Description:   sanitizeUTF8(description),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	return toTransactionResponse(tx), nil
}

// List returns the user's transactions, newest first.
func (s *TransactionService) List(ctx context.Context, userID string) ([]*dto.TransactionResponse, error) {
	transactions, err := s.txRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.TransactionResponse, len(transactions))
	for i, tx := range transactions {
		responses[i] = toTransactionResponse(tx)
	}

	return responses, nil
}

// Categories returns the distinct categories the user has recorded.
func (s *TransactionService) Categories(ctx context.Context, userID string) ([]string, error) {
	return s.txRepo.DistinctCategories(ctx, userID)
}

func toTransactionResponse(tx *models.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:            tx.ID.String(),
		Type:          string(tx.Type),
		Amount:        tx.Amount,
		Category:      tx.Category,
		Date:          tx.Date,
		PaymentMethod: string(tx.PaymentMethod),
		Description:   tx.Description,
		CreatedAt:     tx.CreatedAt.Format(time.RFC3339),
	}
}
