package session

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/eskrenkovic/tql"
)

const CookieName = "session"

// Store persists sessions in the database. Cookie values carry the
// session id plus an HMAC so an unsigned id never reaches the database.
type Store struct {
	db     *sql.DB
	secret []byte
	secure bool
}

func NewStore(db *sql.DB, secret string, secure bool) *Store {
	return &Store{db: db, secret: []byte(secret), secure: secure}
}

// Find returns the stored session, or nil when it does not exist or has
// already expired.
func (s *Store) Find(ctx context.Context, id string) (*Session, error) {
	const query = `
		SELECT
			id, authorized, invitation_id, expires_at
		FROM
			session
		WHERE
			id = $1 AND expires_at > $2;`

	sessions, err := tql.Query[Session](ctx, s.db, query, id, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if len(sessions) == 0 {
		return nil, nil
	}

	return &sessions[0], nil
}

// Save extends the inactivity window and upserts the session. Expired
// rows are swept opportunistically on each write.
func (s *Store) Save(ctx context.Context, session *Session) error {
	if err := s.deleteExpired(ctx); err != nil {
		return err
	}

	session.ExpiresAt = time.Now().UTC().Add(TTL)

	const stmt = `
		INSERT INTO
			session (id, authorized, invitation_id, expires_at)
		VALUES
			(:id, :authorized, :invitation_id, :expires_at)
		ON CONFLICT (id) DO UPDATE SET
			authorized = EXCLUDED.authorized,
			invitation_id = EXCLUDED.invitation_id,
			expires_at = EXCLUDED.expires_at;`
	_, err := tql.Exec(ctx, s.db, stmt, *session)
	return err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	const stmt = `DELETE FROM session WHERE id = $1;`
	_, err := tql.Exec(ctx, s.db, stmt, id)
	return err
}

func (s *Store) deleteExpired(ctx context.Context) error {
	const stmt = `DELETE FROM session WHERE expires_at <= $1;`
	_, err := tql.Exec(ctx, s.db, stmt, time.Now().UTC())
	return err
}

// WriteCookie sets the session cookie with a renewed max age.
func (s *Store) WriteCookie(w http.ResponseWriter, session *Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    s.signedValue(session.ID),
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.secure,
	})
}

// ReadCookie extracts and verifies the session id from the request
// cookie. The second return value is false for missing or forged cookies.
func (s *Store) ReadCookie(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}

	parts := strings.SplitN(cookie.Value, ".", 2)
	if len(parts) != 2 {
		return "", false
	}

	mac, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return "", false
	}

	if !hmac.Equal(mac, s.sign(parts[0])) {
		return "", false
	}

	return parts[0], true
}

func (s *Store) signedValue(id string) string {
	return id + "." + base64.RawURLEncoding.EncodeToString(s.sign(id))
}

func (s *Store) sign(id string) []byte {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(id))
	return mac.Sum(nil)
}
