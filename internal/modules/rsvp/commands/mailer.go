package commands

import (
	"github.com/hrgovic/wedding-site/internal/modules/core"
	"github.com/hrgovic/wedding-site/internal/modules/rsvp/domain"

	"go.uber.org/zap"
)

// Mailer sends the RSVP notification mails. Failures are logged, never
// returned - mail is not part of the commit.
type Mailer struct {
	client        *core.EmailClient
	sender        string
	notifyAddress string
	logger        *zap.Logger
}

func NewMailer(client *core.EmailClient, sender string, notifyAddress string, logger *zap.Logger) *Mailer {
	return &Mailer{
		client:        client,
		sender:        sender,
		notifyAddress: notifyAddress,
		logger:        logger,
	}
}

func (m *Mailer) SendConfirmation(invitation domain.Invitation) {
	if invitation.Email == "" {
		return
	}

	if err := m.client.Send(domain.ConfirmationEmail(invitation, m.sender)); err != nil {
		m.logger.Error(
			"failed to send confirmation email",
			zap.Int64("invitation_id", invitation.ID),
			zap.Error(err),
		)
	}
}

func (m *Mailer) SendDetails(invitation domain.Invitation, created bool) {
	if err := m.client.Send(domain.DetailsEmail(invitation, created, m.sender, m.notifyAddress)); err != nil {
		m.logger.Error(
			"failed to send details email",
			zap.Int64("invitation_id", invitation.ID),
			zap.Error(err),
		)
	}
}
