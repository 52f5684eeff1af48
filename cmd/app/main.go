package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"pulseboard/cmd/fx/config_fx"
	"pulseboard/cmd/fx/controllers_fx"
	"pulseboard/cmd/fx/history_fx"
	"pulseboard/cmd/fx/membership_fx"
	"pulseboard/cmd/fx/platforms_fx"
	"pulseboard/internal/api/controllers"
	"pulseboard/pkg/config"
	"pulseboard/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		platforms_fx.Module,
		membership_fx.Module,
		history_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Dashboard running on port %s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	platformController *controllers.PlatformController,
	membershipController *controllers.MembershipController,
	historyController *controllers.HistoryController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, platformController, membershipController, historyController)

	// the static dashboard answers everything outside /api
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.StaticDir))))

	return r
}

func RegisterRoutes(r *gin.Engine,
	platformController *controllers.PlatformController,
	membershipController *controllers.MembershipController,
	historyController *controllers.HistoryController) {

	api := r.Group("/api")
	api.Use(middleware.NoCacheMiddleware())

	api.GET("/youtube", platformController.GetYouTube)
	api.GET("/mailchimp", platformController.GetMailchimp)
	api.GET("/discord", platformController.GetDiscord)
	api.GET("/analytics", platformController.GetAnalytics)

	api.GET("/memberful", membershipController.GetMembership)
	api.GET("/retention", membershipController.GetRetention)

	api.GET("/history", historyController.GetHistory)
	api.POST("/history", historyController.AppendHistory)
}
