package commands

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hrgovic/wedding-site/internal/modules/core"
	"github.com/hrgovic/wedding-site/internal/modules/rsvp/domain"
	"github.com/hrgovic/wedding-site/internal/modules/rsvp/queries"

	"github.com/eskrenkovic/tql"
)

type SubmitRsvpCommand struct {
	// InvitationID is the invitation bound to the visitor's session,
	// 0 when the session has none yet.
	InvitationID int64
	Form         domain.FormState
}

func (c SubmitRsvpCommand) Validate() error {
	if c.Form.Email == "" {
		return fmt.Errorf("invalid Email - '%s'", c.Form.Email)
	}

	if c.Form.Attending && len(c.Form.Guests) == 0 {
		return fmt.Errorf("at least one guest is required")
	}

	return nil
}

type SubmitRsvpResponse struct {
	// EmailTaken signals the address already belongs to a different
	// invitation. Nothing was written when it is set.
	EmailTaken bool
	Created    bool
	Invitation domain.Invitation
}

type SubmitRsvpCommandHandler struct {
	db        *sql.DB
	directory *queries.InvitationDirectory
	mailer    *Mailer
}

func NewSubmitRsvpCommandHandler(
	db *sql.DB,
	directory *queries.InvitationDirectory,
	mailer *Mailer,
) *SubmitRsvpCommandHandler {
	return &SubmitRsvpCommandHandler{db, directory, mailer}
}

func (h *SubmitRsvpCommandHandler) Handle(
	ctx context.Context,
	request SubmitRsvpCommand,
) (SubmitRsvpResponse, error) {
	var existing *domain.Invitation
	if request.InvitationID != 0 {
		var err error
		existing, err = h.directory.FindByID(ctx, request.InvitationID)
		if err != nil {
			return SubmitRsvpResponse{}, core.NewCommandError(500, err, "failed to load invitation")
		}
	}

	ownerID, err := h.directory.FindIDByEmail(ctx, request.Form.Email)
	if err != nil {
		return SubmitRsvpResponse{}, core.NewCommandError(500, err, "failed to check email ownership")
	}

	if ownerID != 0 && (existing == nil || ownerID != existing.ID) {
		return SubmitRsvpResponse{EmailTaken: true}, nil
	}

	result := domain.Reconcile(existing, request.Form)

	created := existing == nil
	var invitationID int64

	err = core.Tx(ctx, h.db, func(ctx context.Context, tx *sql.Tx) error {
		if created {
			const stmt = `
				INSERT INTO
					invitation (status, email, notes)
				VALUES
					($1, $2, $3)
				RETURNING id;`

			ids, err := tql.Query[int64](ctx, tx, stmt, string(result.Status), result.Email, result.Notes)
			if err != nil {
				return err
			}
			invitationID = ids[0]
		} else {
			invitationID = existing.ID

			const stmt = `
				UPDATE
					invitation
				SET
					status = $1, email = $2, notes = $3, updated_at = now()
				WHERE
					id = $4;`
			if _, err := tql.Exec(ctx, tx, stmt, string(result.Status), result.Email, result.Notes, invitationID); err != nil {
				return err
			}
		}

		for _, guestID := range result.Guests.Delete {
			const stmt = `DELETE FROM guest WHERE id = $1 AND invitation_id = $2;`
			if _, err := tql.Exec(ctx, tx, stmt, guestID, invitationID); err != nil {
				return err
			}
		}

		for _, guest := range result.Guests.Update {
			const stmt = `
				UPDATE
					guest
				SET
					first_name = $1, last_name = $2, position = $3
				WHERE
					id = $4 AND invitation_id = $5;`
			if _, err := tql.Exec(ctx, tx, stmt, guest.FirstName, guest.LastName, guest.Position, guest.ID, invitationID); err != nil {
				return err
			}
		}

		for _, guest := range result.Guests.Create {
			const stmt = `
				INSERT INTO
					guest (invitation_id, first_name, last_name, position)
				VALUES
					($1, $2, $3, $4);`
			if _, err := tql.Exec(ctx, tx, stmt, invitationID, guest.FirstName, guest.LastName, guest.Position); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return SubmitRsvpResponse{}, core.NewCommandError(500, err, "failed to save rsvp")
	}

	// Re-read the committed invitation instead of trusting the in-memory
	// result - guest ids are assigned by the database.
	committed, err := h.directory.FindByID(ctx, invitationID)
	if err != nil {
		return SubmitRsvpResponse{}, core.NewCommandError(500, err, "failed to re-read invitation")
	}
	if committed == nil {
		return SubmitRsvpResponse{}, core.NewCommandError(500, fmt.Errorf("invitation %d vanished after commit", invitationID))
	}

	// Mail is best-effort - the transaction is already committed and a
	// delivery failure must not fail the request.
	h.mailer.SendConfirmation(*committed)
	h.mailer.SendDetails(*committed, created)

	return SubmitRsvpResponse{Invitation: *committed, Created: created}, nil
}
