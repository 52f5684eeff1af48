package metrics

import (
	"math"
	"time"
)

const hoursPerDay = 24

type RetentionReport struct {
	Day7Retention  float64
	Day30Retention float64
	Day90Retention float64
	MonthlyChurn   float64
}

func ageInDays(createdAt, now time.Time) float64 {
	return now.Sub(createdAt).Hours() / hoursPerDay
}

// cohortRetention measures the share of still-active records among
// those that signed up within the half-open window [n, n+7) days ago.
// The window is deliberately a week wide: it reads "signed up
// approximately n days ago", not "at least n days ago".
func cohortRetention(records []SubscriptionRecord, now time.Time, n float64) float64 {
	var size, active int64
	for _, r := range records {
		age := ageInDays(r.CreatedAt, now)
		if age < n || age >= n+7 {
			continue
		}
		size++
		if r.Active {
			active++
		}
	}
	if size == 0 {
		return 0
	}
	return round1(100 * float64(active) / float64(size))
}

// ComputeRetention buckets records into 7/30/90-day signup cohorts and
// reports retention per cohort plus churn over the whole population.
// Empty cohorts (and an empty population) report 0, never a division
// fault.
func ComputeRetention(records []SubscriptionRecord, now time.Time) RetentionReport {
	report := RetentionReport{
		Day7Retention:  cohortRetention(records, now, 7),
		Day30Retention: cohortRetention(records, now, 30),
		Day90Retention: cohortRetention(records, now, 90),
	}

	if total := len(records); total > 0 {
		var inactive int
		for _, r := range records {
			if !r.Active {
				inactive++
			}
		}
		report.MonthlyChurn = round1(100 * float64(inactive) / float64(total))
	}
	return report
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
