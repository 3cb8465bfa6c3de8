package service

import (
	"testing"
	"time"

	"spendlens/internal/models"

	"github.com/stretchr/testify/assert"
)

func fixedClockParser() *ReceiptParser {
	return &ReceiptParser{now: func() time.Time {
		return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	}}
}

func TestParse_FullReceipt(t *testing.T) {
	p := fixedClockParser()

	result := p.Parse("CAFE BILL\n12.50\n01/02/2024\nPaid by cash")

	assert.Equal(t, 12.50, result.Amount)
	assert.Equal(t, "Food", result.Category)
	assert.Equal(t, "01/02/2024", result.Date)
	assert.Equal(t, models.PaymentCash, result.PaymentMethod)
	assert.Equal(t, "CAFE BILL", result.Description)
}

func TestParse_EmptyTextDefaults(t *testing.T) {
	p := fixedClockParser()

	result := p.Parse("")

	assert.Equal(t, 0.0, result.Amount)
	assert.Equal(t, "Other", result.Category)
	assert.Equal(t, "2024-03-15", result.Date)
	assert.Equal(t, models.PaymentOthers, result.PaymentMethod)
	assert.Equal(t, "Receipt", result.Description)
}

func TestParse_LastAmountWins(t *testing.T) {
	p := fixedClockParser()

	result := p.Parse("Item 5.00\nItem 3.25\nTOTAL 8.25")

	assert.Equal(t, 8.25, result.Amount)
}

func TestParse_IntegerAmount(t *testing.T) {
	p := fixedClockParser()

	result := p.Parse("TOTAL 42")

	assert.Equal(t, 42.0, result.Amount)
}

func TestParse_DateTokenNotTakenAsAmount(t *testing.T) {
	p := fixedClockParser()

	// The trailing date must not override the printed total.
	result := p.Parse("TOTAL 19.99\n2024-01-05")

	assert.Equal(t, 19.99, result.Amount)
	assert.Equal(t, "2024-01-05", result.Date)
}

func TestParse_FirstDateWins(t *testing.T) {
	p := fixedClockParser()

	result := p.Parse("Issued 01/02/2024 due 2024-12-31")

	assert.Equal(t, "01/02/2024", result.Date)
}

func TestParse_IsoDateRecognized(t *testing.T) {
	p := fixedClockParser()

	result := p.Parse("paid 2023-11-07")

	assert.Equal(t, "2023-11-07", result.Date)
}

func TestParse_CategoryKeywordOrder(t *testing.T) {
	p := fixedClockParser()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"food", "dinner at a restaurant", "Food"},
		{"transport", "uber ride home", "Transport"},
		{"shopping", "mall purchase", "Shopping"},
		{"utilities", "electricity bill", "Utilities"},
		{"no match", "miscellaneous expense", "Other"},
		{"food beats transport", "cafe near the bus stop", "Food"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Parse(tt.text).Category)
		})
	}
}

func TestParse_PaymentKeywordOrder(t *testing.T) {
	p := fixedClockParser()

	tests := []struct {
		name string
		text string
		want models.PaymentMethod
	}{
		{"cash", "paid in CASH", models.PaymentCash},
		{"credit", "Credit card ending 1234", models.PaymentCreditCard},
		{"debit", "debit payment", models.PaymentDebitCard},
		{"none", "paid somehow", models.PaymentOthers},
		{"cash beats credit", "credit refused, cash accepted", models.PaymentCash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Parse(tt.text).PaymentMethod)
		})
	}
}

func TestParse_DescriptionSkipsBlankLines(t *testing.T) {
	p := fixedClockParser()

	result := p.Parse("\n   \n  GROCERY MART  \n12.00")

	assert.Equal(t, "GROCERY MART", result.Description)
}
