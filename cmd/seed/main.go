// Command seed inserts a demo member and reservation to build proposals against.
package main

import (
	"context"
	"log"
	"time"

	"concierge/cmd/fx/config_fx"
	"concierge/cmd/fx/db_fx"
	"concierge/cmd/fx/logger_fx"
	"concierge/cmd/fx/reservation_fx"
	"concierge/internal/infra"
	"concierge/internal/models/db_models"
	"concierge/internal/repositories"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		reservation_fx.Module,
		fx.Invoke(seed),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	if err := app.Stop(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func seed(
	tx infra.Transactor,
	members repositories.MemberRepository,
	reservations repositories.ReservationRepository,
	logger *zap.Logger,
) error {
	return tx.WithinTransaction(context.Background(), func(ctx context.Context) error {
		member := &db_models.Member{
			Name:  "James Whitfield",
			Email: "james.whitfield@example.com",
		}
		if err := members.Create(ctx, member); err != nil {
			return err
		}

		reservation := &db_models.Reservation{
			MemberID:      member.ID,
			Destination:   "Punta Mita",
			Villa:         "Villa Pacifica",
			ArrivalDate:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			DepartureDate: time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC),
		}
		if err := reservations.Create(ctx, reservation); err != nil {
			return err
		}

		logger.Info("database seeded",
			zap.Uint("member_id", member.ID),
			zap.Uint("reservation_id", reservation.ID))
		return nil
	})
}
