package domain

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

// Guest is one named attendee belonging to an invitation. The ID is
// assigned by the database on creation and stable afterwards. Position
// records the guest's place in the invitation's ordered list.
type Guest struct {
	ID        int64  `db:"id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Position  int    `db:"position"`
}

// Invitation is the RSVP record for one party. Email, when present, is
// unique across all invitations. Code is the optional shareable code a
// seeded invitation can be redeemed with.
type Invitation struct {
	ID     int64
	Code   string
	Status Status
	Email  string
	Notes  string
	Guests []Guest
}

func (i *Invitation) guestByID(id int64) (Guest, bool) {
	for _, g := range i.Guests {
		if g.ID == id {
			return g, true
		}
	}
	return Guest{}, false
}
