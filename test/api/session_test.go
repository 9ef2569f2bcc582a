package main

import (
	"context"
	"testing"
	"time"

	"github.com/hrgovic/wedding-site/internal/modules/session"

	"github.com/stretchr/testify/require"
)

func insertExpiredSession(t *testing.T, id string) {
	t.Helper()

	_, err := fixture.db.Exec(
		"INSERT INTO session (id, authorized, invitation_id, expires_at) VALUES ($1, true, NULL, $2)",
		id, time.Now().UTC().Add(-time.Minute),
	)
	require.NoError(t, err)
}

func Test_Session_Find_Ignores_Expired_Rows(t *testing.T) {
	// Arrange
	store := session.NewStore(fixture.db, "test-secret", false)

	expired := session.New()
	insertExpiredSession(t, expired.ID)

	// Act
	found, err := store.Find(context.Background(), expired.ID)

	// Assert
	require.NoError(t, err)
	require.Nil(t, found)
}

func Test_Session_Save_Renews_Expiry_And_Sweeps_Expired_Rows(t *testing.T) {
	// Arrange
	store := session.NewStore(fixture.db, "test-secret", false)

	expired := session.New()
	insertExpiredSession(t, expired.ID)

	fresh := session.New()
	fresh.Authorized = true

	// Act
	require.NoError(t, store.Save(context.Background(), fresh))

	// Assert - the expired row is gone.
	var count int
	err := fixture.db.QueryRow("SELECT count(*) FROM session WHERE id = $1", expired.ID).Scan(&count)
	require.NoError(t, err)
	require.Zero(t, count)

	// The saved session is readable with a renewed inactivity window.
	found, err := store.Find(context.Background(), fresh.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.True(t, found.Authorized)
	require.True(t, found.ExpiresAt.After(time.Now().UTC()))
}
