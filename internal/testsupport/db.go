// Package testsupport builds throwaway databases for tests.
package testsupport

import (
	"testing"
	"time"

	"concierge/internal/config"
	"concierge/internal/infra"
	"concierge/internal/models/db_models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// OpenDB returns a migrated in-memory SQLite database with foreign keys on.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := infra.InitDatabase(config.Database{
		Driver:   config.DriverSQLite,
		DSN:      "file::memory:?_pragma=foreign_keys(1)",
		LogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// SeedReservation inserts a member with one reservation.
func SeedReservation(t testing.TB, db *gorm.DB, email string) *db_models.Reservation {
	t.Helper()

	member := &db_models.Member{Name: "James Whitfield", Email: email}
	require.NoError(t, db.Create(member).Error)

	res := &db_models.Reservation{
		MemberID:      member.ID,
		Destination:   "Punta Mita",
		Villa:         "Villa Pacifica",
		ArrivalDate:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		DepartureDate: time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(res).Error)
	res.Member = member
	return res
}

// SeedProposal inserts a DRAFT proposal with one item per price.
func SeedProposal(t testing.TB, db *gorm.DB, reservationID uint, prices ...string) *db_models.Proposal {
	t.Helper()

	p := &db_models.Proposal{ReservationID: reservationID, Status: db_models.ProposalStatusDraft}
	require.NoError(t, db.Create(p).Error)

	for i, price := range prices {
		item := &db_models.ProposalItem{
			ProposalID:  p.ID,
			Category:    "Dining",
			Title:       "Item",
			ScheduledAt: time.Date(2025, 3, 16, 19, i, 0, 0, time.UTC),
			Price:       decimal.RequireFromString(price),
		}
		require.NoError(t, db.Create(item).Error)
	}
	return p
}
