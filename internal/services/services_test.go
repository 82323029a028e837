package services

import (
	"context"
	"testing"
	"time"

	"concierge/internal/infra"
	"concierge/internal/repositories"
	"concierge/internal/testsupport"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

type testEnv struct {
	db  *gorm.DB
	ctx context.Context

	proposalRepo repositories.ProposalRepository

	lifecycle    *ProposalLifecycleService
	proposals    ProposalServiceInterface
	collection   CollectionServiceInterface
	reservations ReservationServiceInterface
}

func newTestEnv(t *testing.T, strict bool) *testEnv {
	t.Helper()

	db := testsupport.OpenDB(t)
	logger := zaptest.NewLogger(t)
	tx := infra.NewTransactor(db)

	reservationRepo := repositories.NewReservationRepository(db)
	proposalRepo := repositories.NewProposalRepository(db)
	itemRepo := repositories.NewProposalItemRepository(db)
	guestRepo := repositories.NewProposalGuestRepository(db)
	sentEmailRepo := repositories.NewSentEmailRepository(db)

	notifier := NewNotificationService(sentEmailRepo, "Exclusive Resorts", logger)
	lifecycle := NewProposalLifecycleService(tx, proposalRepo, notifier, strict, logger)

	return &testEnv{
		db:           db,
		ctx:          context.Background(),
		proposalRepo: proposalRepo,
		lifecycle:    lifecycle,
		proposals:    NewProposalService(tx, proposalRepo, reservationRepo, lifecycle, logger),
		collection:   NewCollectionService(tx, proposalRepo, itemRepo, guestRepo, time.UTC, logger),
		reservations: NewReservationService(tx, reservationRepo, proposalRepo, itemRepo, guestRepo, sentEmailRepo, logger),
	}
}

func (e *testEnv) count(t *testing.T, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	q := e.db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}
