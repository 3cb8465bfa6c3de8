package dto

type SummaryRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}
