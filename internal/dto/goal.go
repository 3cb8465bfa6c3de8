package dto

type AddGoalRequest struct {
	GoalName     string  `json:"goalName" validate:"required"`
	TargetAmount float64 `json:"targetAmount" validate:"required,gt=0"`
	SavedSoFar   float64 `json:"savedSoFar"`
	Deadline     string  `json:"deadline"`
	Priority     string  `json:"priority"`
	Notes        string  `json:"notes"`
}

type GoalResponse struct {
	ID           string  `json:"id"`
	GoalName     string  `json:"goalName"`
	TargetAmount float64 `json:"targetAmount"`
	SavedSoFar   float64 `json:"savedSoFar"`
	Deadline     string  `json:"deadline"`
	Priority     string  `json:"priority"`
	Notes        string  `json:"notes,omitempty"`
}
