package services

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"

	resp "pulseboard/internal/models/response_models"
	"pulseboard/pkg/config"
	"pulseboard/pkg/utils"
)

type YouTubeService interface {
	ChannelStats(ctx context.Context) (*resp.YouTubeStats, error)
}

type youTubeService struct {
	cfg config.YouTubeConfig
}

func NewYouTubeService(cfg config.YouTubeConfig) YouTubeService {
	return &youTubeService{cfg: cfg}
}

func (s *youTubeService) ChannelStats(ctx context.Context) (*resp.YouTubeStats, error) {
	if s.cfg.APIKey == "" || s.cfg.ChannelID == "" {
		return nil, fmt.Errorf("%w: youtube api key or channel id", utils.ErrUpstreamNotConfigured)
	}

	svc, err := youtube.NewService(ctx, option.WithAPIKey(s.cfg.APIKey))
	if err != nil {
		return nil, utils.UpstreamError("youtube", err)
	}

	res, err := svc.Channels.List([]string{"statistics"}).
		Id(s.cfg.ChannelID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, utils.UpstreamError("youtube", err)
	}
	if len(res.Items) == 0 {
		return nil, utils.UpstreamError("youtube", fmt.Errorf("channel %s not found", s.cfg.ChannelID))
	}

	stats := res.Items[0].Statistics
	return &resp.YouTubeStats{
		Current:     stats.SubscriberCount,
		Subscribers: stats.SubscriberCount,
		Views:       stats.ViewCount,
		Videos:      stats.VideoCount,
	}, nil
}
