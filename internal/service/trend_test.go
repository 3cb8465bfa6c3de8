package service

import (
	"testing"

	"spendlens/internal/models"

	"github.com/stretchr/testify/assert"
)

func tx(date, category string, amount float64) *models.Transaction {
	return &models.Transaction{Date: date, Category: category, Amount: amount}
}

func TestAggregate_Empty(t *testing.T) {
	assert.Nil(t, Aggregate(nil))
	assert.Nil(t, Aggregate([]*models.Transaction{}))
}

func TestAggregate_GroupsByMonthAndCategory(t *testing.T) {
	buckets := Aggregate([]*models.Transaction{
		tx("2024-01-05", "Food", 10),
		tx("2024-01-20", "Food", 5),
		tx("2024-01-10", "Transport", 7),
		tx("2024-02-01", "Food", 3),
	})

	assert.Equal(t, []MonthlyCategoryBucket{
		{Month: "2024-01", Category: "Food", Amount: 15},
		{Month: "2024-01", Category: "Transport", Amount: 7},
		{Month: "2024-02", Category: "Food", Amount: 3},
	}, buckets)
}

func TestAggregate_PreservesTotal(t *testing.T) {
	transactions := []*models.Transaction{
		tx("2024-01-05", "Food", 12.5),
		tx("garbage", "Food", 2.5),
		tx("2024-03-01", "", 4),
		tx("01/15/2024", "Transport", 1),
	}

	var want float64
	for _, transaction := range transactions {
		want += transaction.Amount
	}

	var got float64
	for _, bucket := range Aggregate(transactions) {
		got += bucket.Amount
	}

	assert.InDelta(t, want, got, 1e-9)
}

func TestAggregate_UnparseableDateGoesToUnknown(t *testing.T) {
	buckets := Aggregate([]*models.Transaction{
		tx("not a date", "Food", 9),
	})

	assert.Len(t, buckets, 1)
	assert.Equal(t, UnknownMonth, buckets[0].Month)
	assert.Equal(t, 9.0, buckets[0].Amount)
}

func TestAggregate_EmptyCategoryBecomesOther(t *testing.T) {
	buckets := Aggregate([]*models.Transaction{
		tx("2024-01-05", "", 2),
	})

	assert.Len(t, buckets, 1)
	assert.Equal(t, "Other", buckets[0].Category)
}

func TestAggregate_AcceptsMultipleDateLayouts(t *testing.T) {
	buckets := Aggregate([]*models.Transaction{
		tx("2024-01-05", "Food", 1),
		tx("01/07/2024", "Food", 1),
		tx("2024/01/09", "Food", 1),
	})

	assert.Equal(t, []MonthlyCategoryBucket{
		{Month: "2024-01", Category: "Food", Amount: 3},
	}, buckets)
}

func TestRecentBuckets(t *testing.T) {
	var buckets []MonthlyCategoryBucket
	for i := 0; i < 25; i++ {
		buckets = append(buckets, MonthlyCategoryBucket{Category: "Food", Amount: float64(i)})
	}

	recent := RecentBuckets(buckets, 20)

	assert.Len(t, recent, 20)
	assert.Equal(t, 5.0, recent[0].Amount)
	assert.Equal(t, 24.0, recent[19].Amount)

	short := []MonthlyCategoryBucket{{Category: "Food"}}
	assert.Equal(t, short, RecentBuckets(short, 20))
}
