package session

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// TTL is the inactivity window after which a session expires. Every
// request that carries a valid session cookie renews the window.
const TTL = 10 * time.Minute

type Session struct {
	ID           string        `db:"id"`
	Authorized   bool          `db:"authorized"`
	InvitationID sql.NullInt64 `db:"invitation_id"`
	ExpiresAt    time.Time     `db:"expires_at"`
}

func New() *Session {
	return &Session{
		ID:        uuid.NewString(),
		ExpiresAt: time.Now().UTC().Add(TTL),
	}
}

// BindInvitation ties the session to an invitation. The first binding
// wins - a session already bound to an invitation keeps it.
func (s *Session) BindInvitation(invitationID int64) {
	if s.InvitationID.Valid {
		return
	}

	s.InvitationID = sql.NullInt64{Int64: invitationID, Valid: true}
}

func (s *Session) ClearInvitation() {
	s.InvitationID = sql.NullInt64{}
}

type sessionContextKey string

const contextKey sessionContextKey = "session"

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey, s)
}

func FromContext(ctx context.Context) *Session {
	s, ok := ctx.Value(contextKey).(*Session)
	if !ok {
		return New()
	}

	return s
}
