package db_fx

import (
	"context"

	"concierge/internal/config"
	"concierge/internal/infra"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(provideDB, infra.NewTransactor)

func provideDB(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := infra.AutoMigrate(db); err != nil {
			return nil, err
		}
		logger.Info("database schema migrated", zap.String("driver", cfg.Database.Driver))
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseDatabase(db, logger)
			return nil
		},
	})
	return db, nil
}
