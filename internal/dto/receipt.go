package dto

// ParseReceiptResponse mirrors the parsed receipt fields. UserID and Persisted
// are only set when the parse result was saved as a transaction.
type ParseReceiptResponse struct {
	Amount        float64 `json:"amount"`
	Category      string  `json:"category"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"paymentMethod"`
	Description   string  `json:"description"`
	UserID        string  `json:"userId,omitempty"`
	Persisted     bool    `json:"persisted,omitempty"`
}
