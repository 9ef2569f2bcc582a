package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_BindInvitation_First_Binding_Wins(t *testing.T) {
	// Arrange
	sess := New()

	// Act
	sess.BindInvitation(1)
	sess.BindInvitation(2)

	// Assert
	require.True(t, sess.InvitationID.Valid)
	require.Equal(t, int64(1), sess.InvitationID.Int64)
}

func Test_ClearInvitation_Allows_Rebinding(t *testing.T) {
	// Arrange
	sess := New()
	sess.BindInvitation(1)

	// Act
	sess.ClearInvitation()
	sess.BindInvitation(2)

	// Assert
	require.Equal(t, int64(2), sess.InvitationID.Int64)
}

func Test_Cookie_Round_Trip(t *testing.T) {
	// Arrange
	store := NewStore(nil, "secret", false)
	sess := New()

	recorder := httptest.NewRecorder()
	store.WriteCookie(recorder, sess)

	request := httptest.NewRequest(http.MethodGet, "/rsvp", nil)
	for _, cookie := range recorder.Result().Cookies() {
		request.AddCookie(cookie)
	}

	// Act
	id, ok := store.ReadCookie(request)

	// Assert
	require.True(t, ok)
	require.Equal(t, sess.ID, id)
}

func Test_Forged_Cookie_Is_Rejected(t *testing.T) {
	// Arrange
	store := NewStore(nil, "secret", false)
	forger := NewStore(nil, "other-secret", false)

	sess := New()
	recorder := httptest.NewRecorder()
	forger.WriteCookie(recorder, sess)

	request := httptest.NewRequest(http.MethodGet, "/rsvp", nil)
	for _, cookie := range recorder.Result().Cookies() {
		request.AddCookie(cookie)
	}

	// Act
	_, ok := store.ReadCookie(request)

	// Assert
	require.False(t, ok)
}

func Test_Malformed_Cookie_Is_Rejected(t *testing.T) {
	// Arrange
	store := NewStore(nil, "secret", false)

	request := httptest.NewRequest(http.MethodGet, "/rsvp", nil)
	request.AddCookie(&http.Cookie{Name: CookieName, Value: "no-separator"})

	// Act
	_, ok := store.ReadCookie(request)

	// Assert
	require.False(t, ok)
}

func Test_FromContext_Without_Session_Returns_Fresh_One(t *testing.T) {
	// Arrange
	request := httptest.NewRequest(http.MethodGet, "/rsvp", nil)

	// Act
	sess := FromContext(request.Context())

	// Assert
	require.NotEmpty(t, sess.ID)
	require.False(t, sess.Authorized)
}
