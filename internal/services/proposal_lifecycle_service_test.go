package services

import (
	"testing"
	"time"

	"concierge/internal/models/db_models"
	"concierge/internal/models/request_models"
	"concierge/internal/testsupport"
	"concierge/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateProposal_StartsAsDraft(t *testing.T) {
	env := newTestEnv(t, false)
	res := testsupport.SeedReservation(t, env.db, "james.whitfield@example.com")

	id := res.ID
	got, err := env.proposals.CreateProposal(env.ctx, request_models.CreateProposalRequest{ReservationID: &id})
	require.NoError(t, err)
	assert.NotZero(t, got.ID)
	assert.Equal(t, db_models.ProposalStatusDraft, got.Status)
	assert.Nil(t, got.SentAt)
	assert.Equal(t, "0.00", got.TotalCost.String())
}

func TestCreateProposal_Validation(t *testing.T) {
	env := newTestEnv(t, false)

	_, err := env.proposals.CreateProposal(env.ctx, request_models.CreateProposalRequest{})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	missing := uint(404)
	_, err = env.proposals.CreateProposal(env.ctx, request_models.CreateProposalRequest{ReservationID: &missing})
	assert.ErrorIs(t, err, utils.ErrReservationNotFound)

	assert.Zero(t, env.count(t, &db_models.Proposal{}, ""))
}

func TestSend_DraftProposal(t *testing.T) {
	env := newTestEnv(t, false)
	res := testsupport.SeedReservation(t, env.db, "james.whitfield@example.com")
	p := testsupport.SeedProposal(t, env.db, res.ID, "1500", "320")

	fixed := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	env.lifecycle.now = func() time.Time { return fixed }

	got, err := env.proposals.SendProposal(env.ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.ProposalStatusSent, got.Status)
	require.NotNil(t, got.SentAt)
	assert.True(t, got.SentAt.Equal(fixed))
	assert.Equal(t, "1820.00", got.TotalCost.String())

	var emails []db_models.SentEmail
	require.NoError(t, env.db.Where("proposal_id = ?", p.ID).Find(&emails).Error)
	require.Len(t, emails, 1)
	assert.Equal(t, "james.whitfield@example.com", emails[0].ToEmail)
	assert.Equal(t, ProposalEmailSubject, emails[0].Subject)
	assert.Equal(t, ProposalEmailPreview, emails[0].BodyPreview)
	assert.Contains(t, emails[0].Body, "James Whitfield")
	assert.Contains(t, emails[0].Body, "2 experiences, total $1820.00")
}

func TestSend_TwiceLogsTwiceAndRestamps(t *testing.T) {
	env := newTestEnv(t, false)
	res := testsupport.SeedReservation(t, env.db, "m@example.com")
	p := testsupport.SeedProposal(t, env.db, res.ID)

	first := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)

	env.lifecycle.now = func() time.Time { return first }
	_, err := env.lifecycle.Send(env.ctx, p.ID)
	require.NoError(t, err)

	env.lifecycle.now = func() time.Time { return second }
	got, err := env.lifecycle.Send(env.ctx, p.ID)
	require.NoError(t, err)

	require.NotNil(t, got.SentAt)
	assert.True(t, got.SentAt.Equal(second))
	assert.Equal(t, int64(2), env.count(t, &db_models.SentEmail{}, "proposal_id = ?", p.ID))
}

func TestSend_NotFound(t *testing.T) {
	env := newTestEnv(t, false)

	_, err := env.lifecycle.Send(env.ctx, 12345)
	assert.ErrorIs(t, err, utils.ErrProposalNotFound)
	assert.Zero(t, env.count(t, &db_models.SentEmail{}, ""))
}

func TestSend_RollsBackWhenLoggingFails(t *testing.T) {
	env := newTestEnv(t, false)
	res := testsupport.SeedReservation(t, env.db, "m@example.com")
	p := testsupport.SeedProposal(t, env.db, res.ID)

	require.NoError(t, env.db.Callback().Create().Before("gorm:create").Register("test:fail_sent_email", func(tx *gorm.DB) {
		if tx.Statement.Table == "sent_emails" {
			_ = tx.AddError(assert.AnError)
		}
	}))

	_, err := env.lifecycle.Send(env.ctx, p.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)

	stored, err := env.proposalRepo.GetByID(env.ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.ProposalStatusDraft, stored.Status)
	assert.Nil(t, stored.SentAt)
}

func TestSetStatus_PermissiveAllowsAnyOrder(t *testing.T) {
	env := newTestEnv(t, false)
	res := testsupport.SeedReservation(t, env.db, "m@example.com")
	p := testsupport.SeedProposal(t, env.db, res.ID)

	got, err := env.lifecycle.SetStatus(env.ctx, p.ID, db_models.ProposalStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, db_models.ProposalStatusPaid, got.Status)
	assert.NotNil(t, got.SentAt, "non-draft proposals always carry sentAt")
	assert.NotNil(t, got.ApprovedAt)
	assert.NotNil(t, got.PaidAt)

	got, err = env.lifecycle.SetStatus(env.ctx, p.ID, db_models.ProposalStatusDraft)
	require.NoError(t, err)
	assert.Equal(t, db_models.ProposalStatusDraft, got.Status)
}

func TestSetStatus_SentStampsSentAt(t *testing.T) {
	env := newTestEnv(t, false)
	res := testsupport.SeedReservation(t, env.db, "m@example.com")
	p := testsupport.SeedProposal(t, env.db, res.ID)

	status := "SENT"
	got, err := env.proposals.UpdateProposal(env.ctx, p.ID, request_models.UpdateProposalRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, db_models.ProposalStatusSent, got.Status)
	assert.NotNil(t, got.SentAt)
	assert.Zero(t, env.count(t, &db_models.SentEmail{}, ""), "status writes do not log emails")
}

func TestSetStatus_RejectsUnknownStatus(t *testing.T) {
	env := newTestEnv(t, false)
	res := testsupport.SeedReservation(t, env.db, "m@example.com")
	p := testsupport.SeedProposal(t, env.db, res.ID)

	_, err := env.lifecycle.SetStatus(env.ctx, p.ID, "ARCHIVED")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = env.proposals.UpdateProposal(env.ctx, p.ID, request_models.UpdateProposalRequest{})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = env.lifecycle.SetStatus(env.ctx, 999, db_models.ProposalStatusSent)
	assert.ErrorIs(t, err, utils.ErrProposalNotFound)
}

func TestStrictMode_ForwardOnly(t *testing.T) {
	env := newTestEnv(t, true)
	res := testsupport.SeedReservation(t, env.db, "m@example.com")
	p := testsupport.SeedProposal(t, env.db, res.ID)

	_, err := env.lifecycle.SetStatus(env.ctx, p.ID, db_models.ProposalStatusApproved)
	assert.ErrorIs(t, err, utils.ErrInvalidTransition)

	_, err = env.lifecycle.Send(env.ctx, p.ID)
	require.NoError(t, err)
	_, err = env.lifecycle.SetStatus(env.ctx, p.ID, db_models.ProposalStatusApproved)
	require.NoError(t, err)

	_, err = env.lifecycle.Send(env.ctx, p.ID)
	assert.ErrorIs(t, err, utils.ErrInvalidTransition, "approved proposals cannot be re-sent")

	_, err = env.lifecycle.SetStatus(env.ctx, p.ID, db_models.ProposalStatusDraft)
	assert.ErrorIs(t, err, utils.ErrInvalidTransition)

	got, err := env.lifecycle.SetStatus(env.ctx, p.ID, db_models.ProposalStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, db_models.ProposalStatusPaid, got.Status)
	assert.Equal(t, int64(1), env.count(t, &db_models.SentEmail{}, "proposal_id = ?", p.ID))
}

func TestValidateTransition(t *testing.T) {
	ok := [][2]db_models.ProposalStatus{
		{db_models.ProposalStatusDraft, db_models.ProposalStatusSent},
		{db_models.ProposalStatusSent, db_models.ProposalStatusApproved},
		{db_models.ProposalStatusApproved, db_models.ProposalStatusPaid},
		{db_models.ProposalStatusSent, db_models.ProposalStatusSent},
	}
	for _, tc := range ok {
		assert.NoError(t, ValidateTransition(tc[0], tc[1]), "%s -> %s", tc[0], tc[1])
	}

	bad := [][2]db_models.ProposalStatus{
		{db_models.ProposalStatusDraft, db_models.ProposalStatusApproved},
		{db_models.ProposalStatusDraft, db_models.ProposalStatusPaid},
		{db_models.ProposalStatusPaid, db_models.ProposalStatusDraft},
		{db_models.ProposalStatusApproved, db_models.ProposalStatusSent},
	}
	for _, tc := range bad {
		assert.ErrorIs(t, ValidateTransition(tc[0], tc[1]), utils.ErrInvalidTransition, "%s -> %s", tc[0], tc[1])
	}

	assert.ErrorIs(t, ValidateTransition(db_models.ProposalStatusDraft, "LOST"), utils.ErrInvalidInput)
}
