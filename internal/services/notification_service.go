package services

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
	"time"

	"concierge/internal/models/db_models"
	"concierge/internal/repositories"
	"go.uber.org/zap"
)

const (
	ProposalEmailSubject = "Your Exclusive Resorts Itinerary Proposal"
	ProposalEmailPreview = "Your proposal is ready for review."
)

// INotificationService records what would have been emailed to the member.
// Nothing is delivered.
type INotificationService interface {
	LogProposalSent(ctx context.Context, proposal *db_models.Proposal, sentAt time.Time) (*db_models.SentEmail, error)
}

type proposalEmailData struct {
	MemberName  string
	Destination string
	Villa       string
	ItemCount   int
	TotalCost   string
	FromName    string
}

const proposalEmailTemplate = `Hello {{.MemberName}},

` + ProposalEmailPreview + `

{{.Destination}} - {{.Villa}}
{{.ItemCount}} experience{{if ne .ItemCount 1}}s{{end}}, total ${{.TotalCost}}

{{.FromName}} Concierge
`

type notificationService struct {
	sentEmails repositories.SentEmailRepository
	bodyTpl    *template.Template
	fromName   string
	logger     *zap.Logger
}

func NewNotificationService(sentEmails repositories.SentEmailRepository, fromName string, logger *zap.Logger) INotificationService {
	return &notificationService{
		sentEmails: sentEmails,
		bodyTpl:    template.Must(template.New("proposalEmail").Parse(proposalEmailTemplate)),
		fromName:   fromName,
		logger:     logger,
	}
}

// LogProposalSent appends one SentEmail addressed to the reservation's
// member. proposal must carry Reservation.Member; Items feed the summary.
func (n *notificationService) LogProposalSent(ctx context.Context, proposal *db_models.Proposal, sentAt time.Time) (*db_models.SentEmail, error) {
	if proposal.Reservation == nil || proposal.Reservation.Member == nil {
		return nil, fmt.Errorf("proposal %d loaded without reservation member", proposal.ID)
	}
	member := proposal.Reservation.Member

	var body bytes.Buffer
	err := n.bodyTpl.Execute(&body, proposalEmailData{
		MemberName:  member.Name,
		Destination: proposal.Reservation.Destination,
		Villa:       proposal.Reservation.Villa,
		ItemCount:   ItemCount(proposal.Items),
		TotalCost:   TotalCost(proposal.Items).StringFixed(2),
		FromName:    n.fromName,
	})
	if err != nil {
		return nil, fmt.Errorf("render proposal email: %w", err)
	}

	record := &db_models.SentEmail{
		ProposalID:  proposal.ID,
		SentAt:      sentAt,
		Subject:     ProposalEmailSubject,
		Body:        body.String(),
		BodyPreview: ProposalEmailPreview,
		ToEmail:     member.Email,
	}
	if err := n.sentEmails.Create(ctx, record); err != nil {
		return nil, err
	}

	n.logger.Info("proposal email logged",
		zap.Uint("proposal_id", proposal.ID),
		zap.Uint("sent_email_id", record.ID),
		zap.String("to", member.Email))
	return record, nil
}
