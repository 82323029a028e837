package config_fx

import (
	"concierge/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Provide(config.Load)
