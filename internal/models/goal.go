package models

import (
	"time"

	"github.com/google/uuid"
)

type GoalPriority string

const (
	PriorityHigh   GoalPriority = "High"
	PriorityMedium GoalPriority = "Medium"
	PriorityLow    GoalPriority = "Low"
)

type Goal struct {
	ID           uuid.UUID    `db:"id"`
	UserID       string       `db:"user_id"`
	GoalName     string       `db:"goal_name"`
	TargetAmount float64      `db:"target_amount"`
	SavedSoFar   float64      `db:"saved_so_far"`
	Deadline     time.Time    `db:"deadline"`
	Priority     GoalPriority `db:"priority"`
	Notes        string       `db:"notes"`
	CreatedAt    time.Time    `db:"created_at"`
}
