package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"spendlens/internal/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeCompleter struct {
	responses []string
	errs      []error
	calls     int
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	i := f.calls
	f.calls++
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var out string
	if i < len(f.responses) {
		out = f.responses[i]
	}
	return out, err
}

func newTestInsightService(completer Completer) *InsightService {
	return &InsightService{
		completer:   completer,
		maxAttempts: 3,
		retryDelay:  time.Millisecond,
		summaryLim:  700,
		trendLim:    20,
		logger:      zap.NewNop(),
	}
}

func sampleTransactions() []*models.Transaction {
	return []*models.Transaction{
		{Date: "2024-01-05", Category: "Food", Amount: 120},
		{Date: "2024-01-10", Category: "Transport", Amount: 40},
		{Date: "2024-02-02", Category: "Food", Amount: 60},
	}
}

func TestGenerate_UsesCompletionWhenAvailable(t *testing.T) {
	completer := &fakeCompleter{responses: []string{"You spent mostly on food."}}
	s := newTestInsightService(completer)

	got := s.generate(context.Background(), sampleTransactions(), nil)

	assert.Equal(t, "You spent mostly on food.", got)
	assert.Equal(t, 1, completer.calls)
}

func TestGenerate_RetriesThenSucceeds(t *testing.T) {
	completer := &fakeCompleter{
		responses: []string{"", "", "Third time works."},
		errs:      []error{errors.New("timeout"), errors.New("timeout"), nil},
	}
	s := newTestInsightService(completer)

	got := s.generate(context.Background(), sampleTransactions(), nil)

	assert.Equal(t, "Third time works.", got)
	assert.Equal(t, 3, completer.calls)
}

func TestGenerate_FallsBackAfterExhaustedRetries(t *testing.T) {
	completer := &fakeCompleter{
		errs: []error{errors.New("down"), errors.New("down"), errors.New("down")},
	}
	s := newTestInsightService(completer)

	got := s.generate(context.Background(), sampleTransactions(), nil)

	assert.Equal(t, 3, completer.calls)
	assert.Contains(t, got, "Basic Spending Summary:")
	assert.Contains(t, got, "- Food: 180.00")
	assert.Contains(t, got, "- Transport: 40.00")
}

func TestGenerate_EmptyCompletionCountsAsFailure(t *testing.T) {
	completer := &fakeCompleter{responses: []string{"  ", "", "\n"}}
	s := newTestInsightService(completer)

	got := s.generate(context.Background(), sampleTransactions(), nil)

	assert.Equal(t, 3, completer.calls)
	assert.Contains(t, got, "Basic Spending Summary:")
}

func TestGenerate_TruncatesLongSummaries(t *testing.T) {
	long := strings.Repeat("a", 800)
	completer := &fakeCompleter{responses: []string{long}}
	s := newTestInsightService(completer)

	got := s.generate(context.Background(), sampleTransactions(), nil)

	assert.Len(t, []rune(got), 703)
	assert.True(t, strings.HasSuffix(got, truncationMarker))
	assert.Equal(t, long[:700], got[:700])
}

func TestFallbackSummary_TopFiveCategoriesDescending(t *testing.T) {
	transactions := []*models.Transaction{
		{Category: "Food", Amount: 100},
		{Category: "Transport", Amount: 90},
		{Category: "Shopping", Amount: 80},
		{Category: "Utilities", Amount: 70},
		{Category: "Health", Amount: 60},
		{Category: "Travel", Amount: 50},
	}

	got := fallbackSummary(transactions, nil)

	assert.NotContains(t, got, "Travel")
	foodIdx := strings.Index(got, "Food")
	healthIdx := strings.Index(got, "Health")
	assert.True(t, foodIdx >= 0 && healthIdx > foodIdx)
}

func TestFallbackSummary_GoalPercentages(t *testing.T) {
	goals := []*models.Goal{
		{GoalName: "Vacation", TargetAmount: 1000, SavedSoFar: 250},
		{GoalName: "Unfunded", TargetAmount: 0, SavedSoFar: 0},
	}

	got := fallbackSummary([]*models.Transaction{{Category: "Food", Amount: 1}}, goals)

	assert.Contains(t, got, "Goal Progress:")
	assert.Contains(t, got, "- Vacation: 25.0% complete")
	assert.Contains(t, got, "- Unfunded: 0.0% complete")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcde"+truncationMarker, truncate("abcdefgh", 5))
}
