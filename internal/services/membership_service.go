package services

import (
	"context"
	"time"

	"pulseboard/internal/metrics"
	resp "pulseboard/internal/models/response_models"
)

// MembershipService turns the raw subscription list into the two
// membership payloads. It never mutates fetched records and keeps no
// state between calls.
type MembershipService interface {
	Summary(ctx context.Context) (*resp.MembershipSummary, error)
	Retention(ctx context.Context) (*resp.RetentionStats, error)
}

type membershipService struct {
	source     SubscriptionSource
	classifier *metrics.Classifier
	now        func() time.Time
}

func NewMembershipService(source SubscriptionSource, classifier *metrics.Classifier) MembershipService {
	if classifier == nil {
		classifier = metrics.NewClassifier(nil)
	}
	return &membershipService{
		source:     source,
		classifier: classifier,
		now:        time.Now,
	}
}

func (s *membershipService) Summary(ctx context.Context) (*resp.MembershipSummary, error) {
	records, err := s.source.FetchSubscriptions(ctx)
	if err != nil {
		return nil, err
	}

	revenue := metrics.ComputeRevenue(s.classifier, records)
	return &resp.MembershipSummary{
		Current: revenue.ActiveCount,
		MRR:     revenue.MRR,
		LTV:     revenue.LTV,
	}, nil
}

func (s *membershipService) Retention(ctx context.Context) (*resp.RetentionStats, error) {
	records, err := s.source.FetchSubscriptions(ctx)
	if err != nil {
		return nil, err
	}

	report := metrics.ComputeRetention(records, s.now())
	return &resp.RetentionStats{
		Day7Retention:  report.Day7Retention,
		Day30Retention: report.Day30Retention,
		Day90Retention: report.Day90Retention,
		MonthlyChurn:   report.MonthlyChurn,
	}, nil
}
