package dto

// AddTransactionRequest carries a new transaction; every field except amount
// may be omitted and is defaulted server-side.
type AddTransactionRequest struct {
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	Category      string  `json:"category"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"paymentMethod"`
	Description   string  `json:"description"`
}

type TransactionResponse struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	Category      string  `json:"category"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"paymentMethod"`
	Description   string  `json:"description"`
	CreatedAt     string  `json:"created_at"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
