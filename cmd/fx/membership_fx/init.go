package membership_fx

import (
	"go.uber.org/fx"

	"pulseboard/internal/metrics"
	"pulseboard/internal/services"
	"pulseboard/pkg/config"
)

var Module = fx.Provide(
	provideSubscriptionSource, provideClassifier, provideMembershipService,
)

func provideSubscriptionSource(cfg *config.Config) services.SubscriptionSource {
	return services.NewMemberfulClient(cfg.Memberful)
}

func provideClassifier() *metrics.Classifier {
	return metrics.NewClassifier(metrics.DefaultKeywords())
}

func provideMembershipService(source services.SubscriptionSource, classifier *metrics.Classifier) services.MembershipService {
	return services.NewMembershipService(source, classifier)
}
