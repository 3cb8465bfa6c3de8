package repository

import (
	"context"

	"spendlens/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Insert("transactions").
		Columns("id", "user_id", "type", "amount", "category", "date", "payment_method", "description", "created_at", "updated_at").
		Values(tx.ID, models.NormalizeUserKey(tx.UserID), tx.Type, tx.Amount, tx.Category, tx.Date, tx.PaymentMethod, tx.Description, tx.CreatedAt, tx.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// FindByUser returns the user's transactions, newest first. The identifier may
// be a 24-hex record key in any casing or an opaque string; both stored forms
// are matched.
func (r *TransactionRepository) FindByUser(ctx context.Context, userID string) ([]*models.Transaction, error) {
	query := squirrel.Select("id", "user_id", "type", "amount", "category", "date", "payment_method", "description", "created_at", "updated_at").
		From("transactions").
		Where(squirrel.Eq{"user_id": models.UserKeyForms(userID)}).
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.Category, &tx.Date, &tx.PaymentMethod, &tx.Description, &tx.CreatedAt, &tx.UpdatedAt,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, &tx)
	}

	return transactions, rows.Err()
}

// DistinctCategories returns the unique categories the user has recorded.
func (r *TransactionRepository) DistinctCategories(ctx context.Context, userID string) ([]string, error) {
	query := squirrel.Select("DISTINCT category").
		From("transactions").
		Where(squirrel.Eq{"user_id": models.UserKeyForms(userID)}).
		OrderBy("category ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}
