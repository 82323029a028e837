package api

import (
	"net/http"

	"concierge/internal/api/controllers"
	"concierge/internal/config"
	"concierge/pkg/middleware"
	"concierge/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Controllers struct {
	Reservations *controllers.ReservationController
	Proposals    *controllers.ProposalController
	Collections  *controllers.CollectionController
}

func NewRouter(cfg *config.Config, logger *zap.Logger, db *gorm.DB, ctrl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware(logger))
	r.Use(middleware.RequestLogger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.Logger(c).Error("panic recovered", zap.Any("panic", recovered))
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
	}))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			utils.Logger(c).Error("health check failed", zap.Error(err))
			utils.RespondError(c, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		utils.RespondSuccess(c, gin.H{"database": "ok"}, "ok")
	})

	RegisterRoutes(r, ctrl)
	return r
}

func RegisterRoutes(r *gin.Engine, ctrl Controllers) {
	apiGroup := r.Group("/api")

	reservationsGroup := apiGroup.Group("/reservations")
	reservationsGroup.GET("", ctrl.Reservations.ListReservations)
	reservationsGroup.GET("/:id", ctrl.Reservations.GetReservation)
	reservationsGroup.DELETE("/:id/delete", ctrl.Reservations.DeleteReservation)

	proposalsGroup := apiGroup.Group("/proposals")
	proposalsGroup.GET("", ctrl.Proposals.ListProposals)
	proposalsGroup.POST("", ctrl.Proposals.CreateProposal)
	proposalsGroup.GET("/:id", ctrl.Proposals.GetProposal)
	proposalsGroup.PATCH("/:id", ctrl.Proposals.UpdateProposal)
	proposalsGroup.POST("/:id/send", ctrl.Proposals.SendProposal)
	proposalsGroup.POST("/:id/items", ctrl.Collections.AddItem)
	proposalsGroup.GET("/:id/guests", ctrl.Collections.ListGuests)
	proposalsGroup.POST("/:id/guests", ctrl.Collections.AddGuest)
	proposalsGroup.DELETE("/:id/guests/:guestId", ctrl.Collections.RemoveGuest)
}
