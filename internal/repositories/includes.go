package repositories

import "gorm.io/gorm"

// Include names a relation to eager-load alongside the requested rows.
type Include string

const (
	// Reservation relations.
	IncludeMember        Include = "Member"
	IncludeProposals     Include = "Proposals"
	IncludeProposalItems Include = "Proposals.Items"

	// Proposal relations. IncludeReservation also loads the reservation's member.
	IncludeReservation Include = "Reservation.Member"
	IncludeItems       Include = "Items"
	IncludeGuests      Include = "Guests"
	IncludeSentEmails  Include = "SentEmails"
)

func applyIncludes(q *gorm.DB, includes []Include) *gorm.DB {
	for _, inc := range includes {
		switch inc {
		case IncludeProposals:
			q = q.Preload(string(inc), orderBy("created_at DESC, id DESC"))
		case IncludeProposalItems:
			q = q.Preload(string(IncludeProposals), orderBy("created_at DESC, id DESC")).
				Preload(string(inc), orderBy("scheduled_at ASC, id ASC"))
		case IncludeItems:
			q = q.Preload(string(inc), orderBy("scheduled_at ASC, id ASC"))
		case IncludeGuests:
			q = q.Preload(string(inc), orderBy("created_at ASC, id ASC"))
		case IncludeSentEmails:
			q = q.Preload(string(inc), orderBy("sent_at ASC, id ASC"))
		default:
			q = q.Preload(string(inc))
		}
	}
	return q
}

func orderBy(clause string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(clause)
	}
}
