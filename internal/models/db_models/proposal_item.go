package db_models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categories offered by the concierge editor. Storage accepts any label.
var KnownCategories = []string{
	"Dining",
	"Activities",
	"Wellness",
	"Excursions",
	"Transport",
	"Experiences",
}

func IsKnownCategory(category string) bool {
	for _, c := range KnownCategories {
		if c == category {
			return true
		}
	}
	return false
}

// MaxItemPrice is the largest value the decimal(12,2) price column holds.
var MaxItemPrice = decimal.RequireFromString("9999999999.99")

type ProposalItem struct {
	BaseModel
	ProposalID  uint            `gorm:"not null;index" json:"proposalId"`
	Category    string          `gorm:"size:64;not null" json:"category"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"type:text;not null" json:"description"`
	ScheduledAt time.Time       `gorm:"not null" json:"scheduledAt"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
}
