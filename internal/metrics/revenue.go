package metrics

import "github.com/shopspring/decimal"

// Expected total cycles purchased per plan type. Deliberately a flat
// heuristic, not a cohort model: shorter commitments are assumed to
// buy more cycles in absolute count because each cycle is cheaper.
const (
	typicalMonthlyCycles    = 20
	typicalSemiannualCycles = 6
	typicalAnnualCycles     = 4
)

func billingMonths(cat Category) int64 {
	switch cat {
	case CategoryAnnual:
		return 12
	case CategorySemiannual:
		return 6
	default:
		return 1
	}
}

func lifetimeCycles(cat Category) int64 {
	switch cat {
	case CategoryAnnual:
		return typicalAnnualCycles
	case CategorySemiannual:
		return typicalSemiannualCycles
	default:
		return typicalMonthlyCycles
	}
}

// RevenueSummary carries plain numbers; the wire shape lives in the
// response models.
type RevenueSummary struct {
	MRR         int64
	LTV         int64
	ActiveCount int64
}

// ComputeRevenue normalizes active subscriptions to monthly recurring
// revenue and a lifetime-value estimate, both in whole currency units.
// Accumulation stays in exact decimals; rounding happens once at
// output. A negative price is a malformed record and contributes 0
// rather than poisoning the aggregate.
func ComputeRevenue(c *Classifier, records []SubscriptionRecord) RevenueSummary {
	hundred := decimal.NewFromInt(100)
	mrr := decimal.Zero
	ltv := decimal.Zero
	var activeCount int64

	for _, r := range records {
		if !r.Active {
			continue
		}
		activeCount++

		if r.PriceCents < 0 {
			continue
		}
		price := decimal.NewFromInt(r.PriceCents).Div(hundred)
		cat := c.Classify(r.PlanLabel)

		mrr = mrr.Add(price.Div(decimal.NewFromInt(billingMonths(cat))))
		ltv = ltv.Add(price.Mul(decimal.NewFromInt(lifetimeCycles(cat))))
	}

	return RevenueSummary{
		MRR:         mrr.Round(0).IntPart(),
		LTV:         ltv.Round(0).IntPart(),
		ActiveCount: activeCount,
	}
}
