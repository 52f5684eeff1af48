package response_models

// MembershipSummary is the /api/memberful payload: active subscriber
// count plus MRR and LTV in whole currency units.
type MembershipSummary struct {
	Current int64 `json:"current"`
	MRR     int64 `json:"mrr"`
	LTV     int64 `json:"ltv"`
}

// RetentionStats percentages carry one decimal place; empty cohorts
// report 0.
type RetentionStats struct {
	Day7Retention  float64 `json:"day7_retention"`
	Day30Retention float64 `json:"day30_retention"`
	Day90Retention float64 `json:"day90_retention"`
	MonthlyChurn   float64 `json:"monthly_churn"`
}
