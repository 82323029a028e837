package reservation_fx

import (
	"concierge/internal/infra"
	"concierge/internal/repositories"
	"concierge/internal/services"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(
	repositories.NewMemberRepository,
	repositories.NewReservationRepository,
	provideReservationService,
)

func provideReservationService(
	tx infra.Transactor,
	reservations repositories.ReservationRepository,
	proposals repositories.ProposalRepository,
	items repositories.ProposalItemRepository,
	guests repositories.ProposalGuestRepository,
	sentEmails repositories.SentEmailRepository,
	logger *zap.Logger,
) services.ReservationServiceInterface {
	return services.NewReservationService(tx, reservations, proposals, items, guests, sentEmails, logger.Named("reservations"))
}
