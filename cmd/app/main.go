package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"concierge/cmd/fx/config_fx"
	"concierge/cmd/fx/controllers_fx"
	"concierge/cmd/fx/db_fx"
	"concierge/cmd/fx/logger_fx"
	"concierge/cmd/fx/proposal_fx"
	"concierge/cmd/fx/reservation_fx"
	"concierge/internal/api"
	"concierge/internal/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		reservation_fx.Module,
		proposal_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(cfg *config.Config, logger *zap.Logger, db *gorm.DB, ctrl api.Controllers) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	return api.NewRouter(cfg, logger.Named("http"), db, ctrl)
}
