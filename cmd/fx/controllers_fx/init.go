package controllers_fx

import (
	"concierge/internal/api"
	"concierge/internal/api/controllers"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewReservationController),
	fx.Provide(controllers.NewProposalController),
	fx.Provide(controllers.NewCollectionController),
	fx.Provide(provideControllers),
)

func provideControllers(
	reservations *controllers.ReservationController,
	proposals *controllers.ProposalController,
	collections *controllers.CollectionController,
) api.Controllers {
	return api.Controllers{
		Reservations: reservations,
		Proposals:    proposals,
		Collections:  collections,
	}
}
