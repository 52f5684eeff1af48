package config_fx

import (
	"go.uber.org/fx"

	"pulseboard/pkg/config"
)

var Module = fx.Provide(
	config.Load)
