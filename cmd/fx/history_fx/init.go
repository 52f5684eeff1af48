package history_fx

import (
	"log"

	"go.uber.org/fx"

	"pulseboard/internal/infra"
	"pulseboard/internal/repositories"
	"pulseboard/internal/services"
	"pulseboard/pkg/config"
)

var Module = fx.Provide(
	provideHistoryRepo, provideHistoryService,
)

func provideHistoryRepo(cfg *config.Config) repositories.HistoryRepository {
	if cfg.History.Driver == "postgres" {
		db := infra.InitPostgresql(cfg.History.PostgresURL)
		return repositories.NewGormHistoryRepository(db)
	}
	log.Printf("history store: file %s", cfg.History.FilePath)
	return repositories.NewFileHistoryRepository(cfg.History.FilePath)
}

func provideHistoryService(repo repositories.HistoryRepository) services.HistoryService {
	return services.NewHistoryService(repo)
}
