package session

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// Middleware loads the session referenced by the request cookie into the
// request context. Requests without a stored session get a fresh,
// unsaved session - it only reaches the database once a handler commits
// it. Stored sessions get their inactivity window renewed on each request.
func Middleware(store *Store, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sess, err := loadSession(ctx, store, r)
			if err != nil {
				logger.Error("failed to load session", zap.Error(err))
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			if sess == nil {
				sess = New()
			} else if err := Commit(ctx, w, store, sess); err != nil {
				// Rolling renewal.
				logger.Error("failed to renew session", zap.Error(err))
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContext(ctx, sess)))
		})
	}
}

func loadSession(ctx context.Context, store *Store, r *http.Request) (*Session, error) {
	id, ok := store.ReadCookie(r)
	if !ok {
		return nil, nil
	}

	return store.Find(ctx, id)
}

// Commit persists session mutations and refreshes the cookie. Handlers
// call this explicitly after changing session state.
func Commit(ctx context.Context, w http.ResponseWriter, store *Store, sess *Session) error {
	if err := store.Save(ctx, sess); err != nil {
		return err
	}

	store.WriteCookie(w, sess)
	return nil
}
