package proposal_fx

import (
	"concierge/internal/config"
	"concierge/internal/infra"
	"concierge/internal/repositories"
	"concierge/internal/services"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(
	repositories.NewProposalRepository,
	repositories.NewProposalItemRepository,
	repositories.NewProposalGuestRepository,
	repositories.NewSentEmailRepository,
	provideNotificationService,
	provideLifecycleService,
	provideProposalService,
	provideCollectionService,
)

func provideNotificationService(sentEmails repositories.SentEmailRepository, cfg *config.Config, logger *zap.Logger) services.INotificationService {
	return services.NewNotificationService(sentEmails, cfg.NotifyFromName, logger.Named("notifications"))
}

func provideLifecycleService(
	tx infra.Transactor,
	proposals repositories.ProposalRepository,
	notifier services.INotificationService,
	cfg *config.Config,
	logger *zap.Logger,
) services.ProposalLifecycleServiceInterface {
	return services.NewProposalLifecycleService(tx, proposals, notifier, cfg.StrictTransitions, logger.Named("lifecycle"))
}

func provideProposalService(
	tx infra.Transactor,
	proposals repositories.ProposalRepository,
	reservations repositories.ReservationRepository,
	lifecycle services.ProposalLifecycleServiceInterface,
	logger *zap.Logger,
) services.ProposalServiceInterface {
	return services.NewProposalService(tx, proposals, reservations, lifecycle, logger.Named("proposals"))
}

func provideCollectionService(
	tx infra.Transactor,
	proposals repositories.ProposalRepository,
	items repositories.ProposalItemRepository,
	guests repositories.ProposalGuestRepository,
	cfg *config.Config,
	logger *zap.Logger,
) services.CollectionServiceInterface {
	return services.NewCollectionService(tx, proposals, items, guests, cfg.ScheduleLocation, logger.Named("collections"))
}
