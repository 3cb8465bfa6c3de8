package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"spendlens/internal/models"
	"spendlens/internal/repository"
	"spendlens/pkg/config"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// NoTransactionsNotice is returned as the summary body when the user has no
// transactions to summarize; it is not an error.
const NoTransactionsNotice = "No transactions found for this user."

// truncationMarker is appended when a summary is cut at the length limit so
// callers can detect truncation.
const truncationMarker = "..."

// Completer is the external generative-text service boundary. It must be
// callable multiple times idempotently; transport errors are expected.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// InsightService turns stored transactions and goals into a short
// natural-language financial summary, falling back to a deterministic report
// when the generative service is unavailable.
type InsightService struct {
	completer   Completer
	txRepo      *repository.TransactionRepository
	goalRepo    *repository.GoalRepository
	maxAttempts int
	retryDelay  time.Duration
	summaryLim  int
	trendLim    int
	logger      *zap.Logger
}

func NewInsightService(
	completer Completer,
	txRepo *repository.TransactionRepository,
	goalRepo *repository.GoalRepository,
	cfg *config.InsightConfig,
	logger *zap.Logger,
) *InsightService {
	return &InsightService{
		completer:   completer,
		txRepo:      txRepo,
		goalRepo:    goalRepo,
		maxAttempts: cfg.MaxAttempts,
		retryDelay:  cfg.RetryDelay,
		summaryLim:  cfg.SummaryLimit,
		trendLim:    cfg.TrendLimit,
		logger:      logger,
	}
}

// Summarize loads the user's transactions and goals and produces the summary
// string. An error is returned only on an unexpected internal fault; service
// degradation (empty or failing completions) yields the fallback report.
func (s *InsightService) Summarize(ctx context.Context, userID string) (string, error) {
	transactions, err := s.txRepo.FindByUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to load transactions: %w", err)
	}
	if len(transactions) == 0 {
		return NoTransactionsNotice, nil
	}

	goals, err := s.goalRepo.FindByUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to load goals: %w", err)
	}

	return s.generate(ctx, transactions, goals), nil
}

// generate runs the full trend -> prompt -> retry -> fallback pipeline over an
// already-loaded data set.
func (s *InsightService) generate(ctx context.Context, transactions []*models.Transaction, goals []*models.Goal) string {
	trend := RecentBuckets(Aggregate(transactions), s.trendLim)

	summary := s.completeWithRetry(ctx, buildInsightPrompt(trend, goals))
	if summary == "" {
		s.logger.Info("Falling back to deterministic summary")
		summary = fallbackSummary(transactions, goals)
	}

	return truncate(summary, s.summaryLim)
}

// completeWithRetry attempts the external call up to maxAttempts times with a
// fixed delay between failures. Only non-empty text counts as success. The
// per-attempt error detail is logged and deliberately dropped from the result;
// callers see a degraded summary, never retry diagnostics.
func (s *InsightService) completeWithRetry(ctx context.Context, prompt string) string {
	var text string
	attempt := 0

	op := func() error {
		attempt++
		out, err := s.completer.Complete(ctx, prompt)
		if err != nil {
			s.logger.Warn("Completion attempt failed",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			return err
		}
		out = strings.TrimSpace(out)
		if out == "" {
			s.logger.Warn("Completion attempt returned empty text", zap.Int("attempt", attempt))
			return errors.New("empty completion")
		}
		text = out
		return nil
	}

	bo := backoff.WithMaxRetries(backoff.NewConstantBackOff(s.retryDelay), uint64(s.maxAttempts-1))
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return ""
	}

	return text
}

// buildInsightPrompt embeds the trend buckets and goals verbatim into a single
// structured prompt with fixed report headings.
func buildInsightPrompt(trend []MonthlyCategoryBucket, goals []*models.Goal) string {
	var b strings.Builder

	b.WriteString("You are a friendly and smart financial advisor.\n")
	b.WriteString("Look at the user's monthly spending trends and savings goals below and write a short, clear financial report in under 200 words.\n")
	b.WriteString("Structure the report with exactly these section headings: Spending Overview, Trends & Insights, Tips for Saving, Goal Progress.\n")
	b.WriteString("\nSpending trends (month, category, amount):\n")
	for _, bucket := range trend {
		fmt.Fprintf(&b, "- %s | %s | %.2f\n", bucket.Month, bucket.Category, bucket.Amount)
	}

	if len(goals) > 0 {
		b.WriteString("\nGoals:\n")
		for _, goal := range goals {
			fmt.Fprintf(&b, "- %s: target %.2f, saved so far %.2f\n", goal.GoalName, goal.TargetAmount, goal.SavedSoFar)
		}
	}

	return b.String()
}

// fallbackSummary computes a deterministic report from the full transaction
// set: top 5 categories by total spend plus goal completion percentages.
func fallbackSummary(transactions []*models.Transaction, goals []*models.Goal) string {
	totals := make(map[string]float64)
	for _, tx := range transactions {
		category := tx.Category
		if category == "" {
			category = "Other"
		}
		totals[category] += tx.Amount
	}

	type categoryTotal struct {
		category string
		amount   float64
	}
	ranked := make([]categoryTotal, 0, len(totals))
	for category, amount := range totals {
		ranked = append(ranked, categoryTotal{category, amount})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].amount != ranked[j].amount {
			return ranked[i].amount > ranked[j].amount
		}
		return ranked[i].category < ranked[j].category
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}

	var b strings.Builder
	b.WriteString("Basic Spending Summary:\n")
	for _, entry := range ranked {
		fmt.Fprintf(&b, "- %s: %.2f\n", entry.category, entry.amount)
	}

	if len(goals) > 0 {
		b.WriteString("\nGoal Progress:\n")
		for _, goal := range goals {
			pct := 0.0
			if goal.TargetAmount != 0 {
				pct = goal.SavedSoFar / goal.TargetAmount * 100
			}
			fmt.Fprintf(&b, "- %s: %.1f%% complete\n", goal.GoalName, pct)
		}
	}

	return b.String()
}

// truncate caps the summary at limit characters, appending the truncation
// marker when anything was cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + truncationMarker
}
