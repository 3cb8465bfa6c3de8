package service

import (
	"sort"
	"time"

	"spendlens/internal/models"
)

// UnknownMonth is the bucket month for transactions whose date cannot be
// parsed; they are kept, not discarded.
const UnknownMonth = "Unknown"

// MonthlyCategoryBucket is a derived (month, category) spending total. It is
// recomputed per summary request and never persisted.
type MonthlyCategoryBucket struct {
	Month    string  `json:"month"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// dateLayouts are tried in order when bucketing a transaction by month.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
	"01-02-2006",
	"2006/01/02",
}

// Aggregate groups transactions by (month, category) and sums amounts.
// Buckets come back sorted ascending by month, then category; lexicographic
// order over "YYYY-MM" is chronologically correct. The bucket totals always
// sum to the input totals.
func Aggregate(transactions []*models.Transaction) []MonthlyCategoryBucket {
	if len(transactions) == 0 {
		return nil
	}

	type key struct {
		month    string
		category string
	}

	totals := make(map[key]float64)
	for _, tx := range transactions {
		category := tx.Category
		if category == "" {
			category = "Other"
		}
		totals[key{monthOf(tx.Date), category}] += tx.Amount
	}

	buckets := make([]MonthlyCategoryBucket, 0, len(totals))
	for k, amount := range totals {
		buckets = append(buckets, MonthlyCategoryBucket{
			Month:    k.month,
			Category: k.category,
			Amount:   amount,
		})
	}

	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Month != buckets[j].Month {
			return buckets[i].Month < buckets[j].Month
		}
		return buckets[i].Category < buckets[j].Category
	})

	return buckets
}

// RecentBuckets keeps the last n buckets of an already sorted sequence. The
// insight generator uses this to bound prompt size to the most recent months.
func RecentBuckets(buckets []MonthlyCategoryBucket, n int) []MonthlyCategoryBucket {
	if len(buckets) <= n {
		return buckets
	}
	return buckets[len(buckets)-n:]
}

// monthOf extracts "YYYY-MM" from a transaction date string, or UnknownMonth
// when no layout matches.
func monthOf(date string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("2006-01")
		}
	}
	return UnknownMonth
}
