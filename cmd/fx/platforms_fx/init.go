package platforms_fx

import (
	"go.uber.org/fx"

	"pulseboard/internal/services"
	"pulseboard/pkg/config"
)

var Module = fx.Provide(
	provideYouTube, provideMailchimp, provideDiscord, provideAnalytics,
)

func provideYouTube(cfg *config.Config) services.YouTubeService {
	return services.NewYouTubeService(cfg.YouTube)
}

func provideMailchimp(cfg *config.Config) services.MailchimpService {
	return services.NewMailchimpService(cfg.Mailchimp)
}

func provideDiscord(cfg *config.Config) services.DiscordService {
	return services.NewDiscordService(cfg.Discord)
}

func provideAnalytics(cfg *config.Config) services.AnalyticsService {
	return services.NewAnalyticsService(cfg.Analytics)
}
