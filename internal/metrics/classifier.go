package metrics

import "strings"

type Category string

const (
	CategoryMonthly    Category = "monthly"
	CategorySemiannual Category = "semiannual"
	CategoryAnnual     Category = "annual"
)

// KeywordTable maps a category to the substrings that select it.
// Matching is case-insensitive. Categories are checked in the order
// annual, semiannual; anything unmatched is monthly, so a label that
// carries keywords from both buckets resolves to annual.
type KeywordTable map[Category][]string

func DefaultKeywords() KeywordTable {
	return KeywordTable{
		CategoryAnnual:     {"annual", "yearly", "year"},
		CategorySemiannual: {"6-month", "6 month", "semi"},
	}
}

type Classifier struct {
	keywords KeywordTable
}

func NewClassifier(keywords KeywordTable) *Classifier {
	if keywords == nil {
		keywords = DefaultKeywords()
	}
	return &Classifier{keywords: keywords}
}

// Classify never fails: every label lands in exactly one category.
func (c *Classifier) Classify(planLabel string) Category {
	label := strings.ToLower(planLabel)
	for _, cat := range []Category{CategoryAnnual, CategorySemiannual} {
		for _, kw := range c.keywords[cat] {
			if strings.Contains(label, kw) {
				return cat
			}
		}
	}
	return CategoryMonthly
}
