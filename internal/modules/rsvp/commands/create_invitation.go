package commands

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hrgovic/wedding-site/internal/modules/core"

	"github.com/eskrenkovic/tql"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Codes are matched case-insensitively, so a lowercase alphabet keeps
// them unambiguous when read over the phone.
const codeAlphabet = "23456789abcdefghjkmnpqrstuvwxyz"

const codeLength = 7

type CreateInvitationCommand struct {
	FirstName string
	LastName  string
	Email     string
}

func (c CreateInvitationCommand) Validate() error {
	if c.FirstName == "" {
		return fmt.Errorf("invalid FirstName - '%s'", c.FirstName)
	}

	if c.LastName == "" {
		return fmt.Errorf("invalid LastName - '%s'", c.LastName)
	}

	return nil
}

type CreateInvitationResponse struct {
	InvitationID int64
	Code         string
}

type CreateInvitationCommandHandler struct {
	db *sql.DB
}

func NewCreateInvitationCommandHandler(db *sql.DB) *CreateInvitationCommandHandler {
	return &CreateInvitationCommandHandler{db}
}

// Handle seeds a pending invitation with a generated shareable code and
// the primary guest as the first list entry.
func (h *CreateInvitationCommandHandler) Handle(
	ctx context.Context,
	request CreateInvitationCommand,
) (CreateInvitationResponse, error) {
	code, err := gonanoid.Generate(codeAlphabet, codeLength)
	if err != nil {
		return CreateInvitationResponse{}, err
	}

	email := sql.NullString{String: request.Email, Valid: request.Email != ""}

	var invitationID int64
	err = core.Tx(ctx, h.db, func(ctx context.Context, tx *sql.Tx) error {
		const stmt = `
			INSERT INTO
				invitation (code, status, email, notes)
			VALUES
				($1, 'PENDING', $2, '')
			RETURNING id;`

		ids, err := tql.Query[int64](ctx, tx, stmt, code, email)
		if err != nil {
			return err
		}
		invitationID = ids[0]

		const guestStmt = `
			INSERT INTO
				guest (invitation_id, first_name, last_name, position)
			VALUES
				($1, $2, $3, 0);`
		_, err = tql.Exec(ctx, tx, guestStmt, invitationID, request.FirstName, request.LastName)
		return err
	})
	if err != nil {
		return CreateInvitationResponse{}, core.NewCommandError(500, err, "failed to create invitation")
	}

	return CreateInvitationResponse{InvitationID: invitationID, Code: code}, nil
}
