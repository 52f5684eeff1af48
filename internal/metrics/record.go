package metrics

import "time"

// SubscriptionRecord is one upstream subscription as handed to the
// aggregation functions. Records are never mutated here; every
// computation derives new values.
type SubscriptionRecord struct {
	Active     bool
	CreatedAt  time.Time
	ExpiresAt  time.Time // zero when the upstream does not report one
	PlanLabel  string
	PriceCents int64 // minor currency units for one billing cycle
}
