package queries

import (
	"context"
	"database/sql"

	"github.com/hrgovic/wedding-site/internal/modules/rsvp/domain"

	"github.com/eskrenkovic/tql"
)

type invitationRow struct {
	ID     int64  `db:"id"`
	Code   string `db:"code"`
	Status string `db:"status"`
	Email  string `db:"email"`
	Notes  string `db:"notes"`
}

// InvitationDirectory is the read side for invitations. Lookups that
// find nothing return (nil, nil).
type InvitationDirectory struct {
	db *sql.DB
}

func NewInvitationDirectory(db *sql.DB) *InvitationDirectory {
	return &InvitationDirectory{db}
}

func (d *InvitationDirectory) FindByID(ctx context.Context, id int64) (*domain.Invitation, error) {
	const query = `
		SELECT
			id, COALESCE(code, '') AS code, status, COALESCE(email, '') AS email, notes
		FROM
			invitation
		WHERE
			id = $1;`

	return d.findOne(ctx, query, id)
}

func (d *InvitationDirectory) FindByCode(ctx context.Context, code string) (*domain.Invitation, error) {
	const query = `
		SELECT
			id, COALESCE(code, '') AS code, status, COALESCE(email, '') AS email, notes
		FROM
			invitation
		WHERE
			code IS NOT NULL AND lower(code) = lower($1);`

	return d.findOne(ctx, query, code)
}

// FindIDByEmail returns the id of the invitation owning the address, or
// 0 when the address is unclaimed. Matching is case-insensitive.
func (d *InvitationDirectory) FindIDByEmail(ctx context.Context, email string) (int64, error) {
	const query = `
		SELECT
			id
		FROM
			invitation
		WHERE
			email IS NOT NULL AND lower(email) = lower($1);`

	ids, err := tql.Query[int64](ctx, d.db, query, email)
	if err != nil {
		return 0, err
	}

	if len(ids) == 0 {
		return 0, nil
	}

	return ids[0], nil
}

func (d *InvitationDirectory) findOne(ctx context.Context, query string, param any) (*domain.Invitation, error) {
	rows, err := tql.Query[invitationRow](ctx, d.db, query, param)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]

	const guestsQuery = `
		SELECT
			id, first_name, last_name, position
		FROM
			guest
		WHERE
			invitation_id = $1
		ORDER BY
			position, id;`

	guests, err := tql.Query[domain.Guest](ctx, d.db, guestsQuery, row.ID)
	if err != nil {
		return nil, err
	}

	return &domain.Invitation{
		ID:     row.ID,
		Code:   row.Code,
		Status: domain.Status(row.Status),
		Email:  row.Email,
		Notes:  row.Notes,
		Guests: guests,
	}, nil
}
