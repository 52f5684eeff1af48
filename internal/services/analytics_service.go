package services

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
	"google.golang.org/api/option"

	resp "pulseboard/internal/models/response_models"
	"pulseboard/pkg/config"
	"pulseboard/pkg/utils"
)

const analyticsScope = "https://www.googleapis.com/auth/analytics.readonly"

type AnalyticsService interface {
	WeeklyStats(ctx context.Context) (*resp.AnalyticsStats, error)
}

type analyticsService struct {
	cfg config.AnalyticsConfig
}

func NewAnalyticsService(cfg config.AnalyticsConfig) AnalyticsService {
	return &analyticsService{cfg: cfg}
}

func (s *analyticsService) WeeklyStats(ctx context.Context) (*resp.AnalyticsStats, error) {
	if s.cfg.ClientEmail == "" || s.cfg.PrivateKey == "" || s.cfg.PropertyID == "" {
		return nil, fmt.Errorf("%w: google analytics", utils.ErrUpstreamNotConfigured)
	}

	conf := &jwt.Config{
		Email:      s.cfg.ClientEmail,
		PrivateKey: []byte(s.cfg.PrivateKey),
		Scopes:     []string{analyticsScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := analyticsdata.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, utils.UpstreamError("analytics", err)
	}

	req := &analyticsdata.RunReportRequest{
		DateRanges: []*analyticsdata.DateRange{
			{StartDate: "7daysAgo", EndDate: "today"},
		},
		Metrics: []*analyticsdata.Metric{
			{Name: "activeUsers"},
			{Name: "sessions"},
			{Name: "screenPageViews"},
		},
	}

	report, err := svc.Properties.
		RunReport("properties/"+s.cfg.PropertyID, req).
		Context(ctx).
		Do()
	if err != nil {
		return nil, utils.UpstreamError("analytics", err)
	}

	return &resp.AnalyticsStats{
		ActiveUsers7d: metricValue(report, 0),
		Sessions7d:    metricValue(report, 1),
		Pageviews7d:   metricValue(report, 2),
	}, nil
}

// metricValue reads one aggregate cell; a missing row or unparsable
// value reads as 0 so the payload stays numeric.
func metricValue(report *analyticsdata.RunReportResponse, idx int) int64 {
	if report == nil || len(report.Rows) == 0 {
		return 0
	}
	row := report.Rows[0]
	if idx >= len(row.MetricValues) {
		return 0
	}
	v, err := strconv.ParseInt(row.MetricValues[idx].Value, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
