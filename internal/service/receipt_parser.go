package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"spendlens/internal/models"
)

// ParsedReceipt holds the fields heuristically extracted from receipt text.
// Every field is always populated; unmatched fields get defaults.
type ParsedReceipt struct {
	Amount        float64              `json:"amount"`
	Category      string               `json:"category"`
	Date          string               `json:"date"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	Description   string               `json:"description"`
}

var (
	amountPattern = regexp.MustCompile(`\b\d+(?:\.\d{1,2})?\b`)
	datePattern   = regexp.MustCompile(`\b\d{2}[/-]\d{2}[/-]\d{4}\b|\b\d{4}[/-]\d{2}[/-]\d{2}\b`)
)

// categoryKeywords maps categories to trigger words, checked in order; the
// first category with a match wins. Slice, not map: the order is the tie-break.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"Food", []string{"restaurant", "cafe", "meal", "dining"}},
	{"Transport", []string{"taxi", "uber", "bus", "train", "fuel"}},
	{"Shopping", []string{"store", "shop", "mall", "clothes"}},
	{"Utilities", []string{"electricity", "water", "bill", "internet"}},
}

// paymentKeywords is checked in order against the lowercased text.
var paymentKeywords = []struct {
	keyword string
	method  models.PaymentMethod
}{
	{"cash", models.PaymentCash},
	{"credit", models.PaymentCreditCard},
	{"debit", models.PaymentDebitCard},
}

// ReceiptParser extracts transaction fields from noisy OCR text. It does no
// I/O; the clock is injected so the today-default is testable.
type ReceiptParser struct {
	now func() time.Time
}

func NewReceiptParser() *ReceiptParser {
	return &ReceiptParser{now: time.Now}
}

// Parse never fails: unmatched fields fall back to zero amount, today's date,
// the Other category, the Others payment method and a "Receipt" description.
func (p *ReceiptParser) Parse(text string) ParsedReceipt {
	result := ParsedReceipt{
		Category:      "Other",
		PaymentMethod: models.PaymentOthers,
	}
	lower := strings.ToLower(text)

	result.Amount = p.parseAmount(text)

	if match := datePattern.FindString(text); match != "" {
		result.Date = match
	} else {
		result.Date = p.now().Format("2006-01-02")
	}

	for _, entry := range categoryKeywords {
		if containsAny(lower, entry.keywords) {
			result.Category = entry.category
			break
		}
	}

	for _, entry := range paymentKeywords {
		if strings.Contains(lower, entry.keyword) {
			result.PaymentMethod = entry.method
			break
		}
	}

	result.Description = firstLine(text)

	return result
}

// parseAmount takes the last decimal number in the text, on the assumption
// that receipts print the total last. This is a strong but unverified layout
// heuristic; it is a known accuracy limitation, not a defect. Date tokens are
// blanked out first so "01/02/2024" never masquerades as an amount.
func (p *ReceiptParser) parseAmount(text string) float64 {
	withoutDates := datePattern.ReplaceAllString(text, " ")
	matches := amountPattern.FindAllString(withoutDates, -1)
	if len(matches) == 0 {
		return 0
	}

	amount, err := strconv.ParseFloat(matches[len(matches)-1], 64)
	if err != nil {
		return 0
	}
	return amount
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// firstLine returns the first non-empty line of the text, or "Receipt" when
// the text is blank.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return "Receipt"
}
