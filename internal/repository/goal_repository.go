package repository

import (
	"context"

	"spendlens/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type GoalRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewGoalRepository(db *pgxpool.Pool, logger *zap.Logger) *GoalRepository {
	return &GoalRepository{
		db:     db,
		logger: logger,
	}
}

func (r *GoalRepository) Create(ctx context.Context, goal *models.Goal) error {
	query := squirrel.Insert("goals").
		Columns("id", "user_id", "goal_name", "target_amount", "saved_so_far", "deadline", "priority", "notes", "created_at").
		Values(goal.ID, models.NormalizeUserKey(goal.UserID), goal.GoalName, goal.TargetAmount, goal.SavedSoFar, goal.Deadline, goal.Priority, goal.Notes, goal.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// FindByUser returns the user's goals, nearest deadline first. Accepts both
// admissible identifier forms, same as TransactionRepository.FindByUser.
func (r *GoalRepository) FindByUser(ctx context.Context, userID string) ([]*models.Goal, error) {
	query := squirrel.Select("id", "user_id", "goal_name", "target_amount", "saved_so_far", "deadline", "priority", "notes", "created_at").
		From("goals").
		Where(squirrel.Eq{"user_id": models.UserKeyForms(userID)}).
		OrderBy("deadline ASC").
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

	var goals []*models.Goal
	for rows.Next() {
		var goal models.Goal
		if err := rows.Scan(
			&goal.ID, &goal.UserID, &goal.GoalName, &goal.TargetAmount, &goal.SavedSoFar, &goal.Deadline, &goal.Priority, &goal.Notes, &goal.CreatedAt,
		); err != nil {
			return nil, err
		}
		goals = append(goals, &goal)
	}

	return goals, rows.Err()
}
