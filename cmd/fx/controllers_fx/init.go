package controllers_fx

import (
	"go.uber.org/fx"

	"pulseboard/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlatformController),
	fx.Provide(controllers.NewMembershipController),
	fx.Provide(controllers.NewHistoryController))
