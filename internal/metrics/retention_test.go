package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func signedUpDaysAgo(now time.Time, days float64, active bool) SubscriptionRecord {
	return SubscriptionRecord{
		Active:    active,
		CreatedAt: now.Add(-time.Duration(days * 24 * float64(time.Hour))),
		PlanLabel: "Monthly",
	}
}

func TestComputeRetentionEmptyInput(t *testing.T) {
	got := ComputeRetention(nil, time.Now())
	assert.Equal(t, RetentionReport{}, got, "every field reports 0 on empty input")
}

// The day-7 cohort is the half-open window [7, 14): exactly 7 days old
// is inside, exactly 14 days old is not.
func TestComputeRetentionWindowBoundaries(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  float64
		want float64
	}{
		{name: "exactly 7 days is in the day-7 cohort", age: 7, want: 100},
		{name: "13.9 days is still in the day-7 cohort", age: 13.9, want: 100},
		{name: "exactly 14 days is out", age: 14, want: 0},
		{name: "just under 7 days is out", age: 6.9, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []SubscriptionRecord{signedUpDaysAgo(now, tt.age, true)}
			assert.Equal(t, tt.want, ComputeRetention(records, now).Day7Retention)
		})
	}
}

func TestComputeRetentionCohortPercentages(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	records := []SubscriptionRecord{
		// day-7 cohort: 2 of 3 active
		signedUpDaysAgo(now, 8, true),
		signedUpDaysAgo(now, 10, true),
		signedUpDaysAgo(now, 12, false),
		// day-30 cohort: 1 of 2 active
		signedUpDaysAgo(now, 31, true),
		signedUpDaysAgo(now, 35, false),
		// outside every cohort
		signedUpDaysAgo(now, 50, true),
	}

	got := ComputeRetention(records, now)
	assert.Equal(t, 66.7, got.Day7Retention)
	assert.Equal(t, 50.0, got.Day30Retention)
	assert.Equal(t, 0.0, got.Day90Retention, "empty cohort reports 0")
	// churn counts the whole population: 2 inactive of 6
	assert.Equal(t, 33.3, got.MonthlyChurn)
}

func TestComputeRetentionHalfInactiveChurn(t *testing.T) {
	now := time.Now()
	records := []SubscriptionRecord{
		signedUpDaysAgo(now, 100, true),
		signedUpDaysAgo(now, 100, false),
		signedUpDaysAgo(now, 200, true),
		signedUpDaysAgo(now, 200, false),
	}

	assert.Equal(t, 50.0, ComputeRetention(records, now).MonthlyChurn)
}

func TestComputeRetentionAggregateScenario(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	records := []SubscriptionRecord{
		{Active: true, CreatedAt: now.AddDate(0, 0, -10), PlanLabel: "Monthly", PriceCents: 500},
		{Active: false, CreatedAt: now.AddDate(0, 0, -40), PlanLabel: "Monthly", PriceCents: 500},
	}

	revenue := ComputeRevenue(NewClassifier(nil), records)
	assert.Equal(t, RevenueSummary{MRR: 5, LTV: 100, ActiveCount: 1}, revenue)

	retention := ComputeRetention(records, now)
	// the 10-day-old record sits between the day-7 and day-30 windows;
	// the 40-day-old one is outside every window
	assert.Equal(t, 0.0, retention.Day7Retention)
	assert.Equal(t, 0.0, retention.Day30Retention)
	assert.Equal(t, 50.0, retention.MonthlyChurn)
}

func TestComputeRetentionIdempotent(t *testing.T) {
	now := time.Now()
	records := []SubscriptionRecord{
		signedUpDaysAgo(now, 8, true),
		signedUpDaysAgo(now, 33, false),
	}

	first := ComputeRetention(records, now)
	assert.Equal(t, first, ComputeRetention(records, now))

	reversed := []SubscriptionRecord{records[1], records[0]}
	assert.Equal(t, first, ComputeRetention(reversed, now))
}
