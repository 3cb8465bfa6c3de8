package service

import (
	"context"
	"errors"
	"time"

	"spendlens/internal/dto"
	"spendlens/internal/models"
	"spendlens/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidGoal = errors.New("goal name and target amount are required")

type GoalService struct {
	goalRepo *repository.GoalRepository
	logger   *zap.Logger
}

func NewGoalService(goalRepo *repository.GoalRepository, logger *zap.Logger) *GoalService {
	return &GoalService{
		goalRepo: goalRepo,
		logger:   logger,
	}
}

func (s *GoalService) Add(ctx context.Context, userID string, req *dto.AddGoalRequest) (*dto.GoalResponse, error) {
	if req.GoalName == "" || req.TargetAmount <= 0 {
		return nil, ErrInvalidGoal
	}

	deadline := time.Now().AddDate(1, 0, 0)
	if req.Deadline != "" {
		parsed, err := time.Parse("2006-01-02", req.Deadline)
		if err != nil {
			return nil, ErrInvalidGoal
		}
		deadline = parsed
	}

	priority := models.GoalPriority(req.Priority)
	switch priority {
	case models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
	default:
		priority = models.PriorityMedium
	}

	goal := &models.Goal{
		ID:           uuid.New(),
		UserID:       models.NormalizeUserKey(userID),
		GoalName:     req.GoalName,
		TargetAmount: req.TargetAmount,
		SavedSoFar:   req.SavedSoFar,
		Deadline:     deadline,
		Priority:     priority,
		Notes:        req.Notes,
		CreatedAt:    time.Now(),
	}

	if err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, err
	}

	return toGoalResponse(goal), nil
}

// List returns the user's goals, nearest deadline first.
func (s *GoalService) List(ctx context.Context, userID string) ([]*dto.GoalResponse, error) {
	goals, err := s.goalRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.GoalResponse, len(goals))
	for i, goal := range goals {
		responses[i] = toGoalResponse(goal)
	}

	return responses, nil
}

func toGoalResponse(goal *models.Goal) *dto.GoalResponse {
	return &dto.GoalResponse{
		ID:           goal.ID.String(),
		GoalName:     goal.GoalName,
		TargetAmount: goal.TargetAmount,
		SavedSoFar:   goal.SavedSoFar,
		Deadline:     goal.Deadline.Format("2006-01-02"),
		Priority:     string(goal.Priority),
		Notes:        goal.Notes,
	}
}
