package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func existingInvitation() *Invitation {
	return &Invitation{
		ID:     1,
		Status: StatusAccepted,
		Email:  "a@x.com",
		Guests: []Guest{
			{ID: 10, FirstName: "Ann", LastName: "A", Position: 0},
			{ID: 11, FirstName: "Bo", LastName: "B", Position: 1},
		},
	}
}

func Test_Reconcile_Decline_Keeps_Stored_Guests(t *testing.T) {
	// Arrange
	existing := existingInvitation()

	submitted := FormState{
		Attending: false,
		Email:     "a@x.com",
		Guests: []FormGuest{
			{FirstName: "Someone", LastName: "Else"},
		},
	}

	// Act
	result := Reconcile(existing, submitted)

	// Assert
	require.Equal(t, StatusRejected, result.Status)
	require.True(t, result.Guests.Empty())
}

func Test_Reconcile_Accept_Partitions_Guests(t *testing.T) {
	// Arrange
	existing := existingInvitation()

	submitted := FormState{
		Attending: true,
		Email:     "a@x.com",
		Guests: []FormGuest{
			{ID: 10, FirstName: "Ann", LastName: "A"},
			{FirstName: "Cy", LastName: "C"},
		},
	}

	// Act
	result := Reconcile(existing, submitted)

	// Assert
	require.Equal(t, StatusAccepted, result.Status)

	require.Len(t, result.Guests.Update, 1)
	require.Equal(t, int64(10), result.Guests.Update[0].ID)
	require.Equal(t, "Ann", result.Guests.Update[0].FirstName)

	require.Len(t, result.Guests.Create, 1)
	require.Equal(t, "Cy", result.Guests.Create[0].FirstName)
	require.Equal(t, "C", result.Guests.Create[0].LastName)

	require.Equal(t, []int64{11}, result.Guests.Delete)
}

func Test_Reconcile_Drops_Foreign_Guest_Identity(t *testing.T) {
	// Arrange
	existing := existingInvitation()

	submitted := FormState{
		Attending: true,
		Email:     "a@x.com",
		Guests: []FormGuest{
			{ID: 10, FirstName: "Ann", LastName: "A"},
			{ID: 999, FirstName: "Not", LastName: "Mine"},
		},
	}

	// Act
	result := Reconcile(existing, submitted)

	// Assert
	for _, guest := range result.Guests.Update {
		require.NotEqual(t, int64(999), guest.ID)
	}
	require.Empty(t, result.Guests.Create)
	require.Equal(t, []int64{11}, result.Guests.Delete)
}

func Test_Reconcile_Without_Existing_Invitation_Creates_All_Guests(t *testing.T) {
	// Arrange
	submitted := FormState{
		Attending: true,
		Email:     "new@x.com",
		Notes:     "no nuts please",
		Guests: []FormGuest{
			{FirstName: "Ann", LastName: "A"},
			{FirstName: "Bo", LastName: "B"},
		},
	}

	// Act
	result := Reconcile(nil, submitted)

	// Assert
	require.Equal(t, StatusAccepted, result.Status)
	require.Equal(t, "new@x.com", result.Email)
	require.Equal(t, "no nuts please", result.Notes)

	require.Len(t, result.Guests.Create, 2)
	require.Equal(t, 0, result.Guests.Create[0].Position)
	require.Equal(t, 1, result.Guests.Create[1].Position)
	require.Empty(t, result.Guests.Update)
	require.Empty(t, result.Guests.Delete)
}

func Test_Reconcile_Without_Existing_Invitation_Ignores_Submitted_Identities(t *testing.T) {
	// Arrange
	submitted := FormState{
		Attending: true,
		Email:     "new@x.com",
		Guests: []FormGuest{
			{ID: 42, FirstName: "Ann", LastName: "A"},
		},
	}

	// Act
	result := Reconcile(nil, submitted)

	// Assert
	require.Empty(t, result.Guests.Create)
	require.Empty(t, result.Guests.Update)
	require.Empty(t, result.Guests.Delete)
}

func Test_Reconcile_Positions_Follow_Submitted_Order(t *testing.T) {
	// Arrange
	existing := existingInvitation()

	submitted := FormState{
		Attending: true,
		Email:     "a@x.com",
		Guests: []FormGuest{
			{FirstName: "Cy", LastName: "C"},
			{ID: 11, FirstName: "Bo", LastName: "B"},
			{ID: 10, FirstName: "Ann", LastName: "A"},
		},
	}

	// Act
	result := Reconcile(existing, submitted)

	// Assert
	require.Len(t, result.Guests.Create, 1)
	require.Equal(t, 0, result.Guests.Create[0].Position)

	require.Len(t, result.Guests.Update, 2)
	require.Equal(t, int64(11), result.Guests.Update[0].ID)
	require.Equal(t, 1, result.Guests.Update[0].Position)
	require.Equal(t, int64(10), result.Guests.Update[1].ID)
	require.Equal(t, 2, result.Guests.Update[1].Position)

	require.Empty(t, result.Guests.Delete)
}
