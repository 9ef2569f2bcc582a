package domain

import (
	"fmt"
	"net/mail"
	"net/url"
	"strconv"
	"strings"

	"github.com/hrgovic/wedding-site/internal/modules/core"
)

// FormGuest mirrors one guest row of the RSVP form. ID 0 means the row
// has no stored identity yet - a new guest.
type FormGuest struct {
	ID        int64
	FirstName string
	LastName  string
}

// FormState is the RSVP form's view of an invitation.
type FormState struct {
	Attending bool
	Email     string
	Notes     string
	Guests    []FormGuest
}

// DefaultFormState is what a visitor without a stored invitation sees:
// attending preselected and a single blank guest row.
func DefaultFormState() FormState {
	return FormState{
		Attending: true,
		Guests:    []FormGuest{{}},
	}
}

// ToFormState maps a stored invitation onto the form. It is total - a
// nil invitation yields the default state. Attending is true only for
// accepted invitations.
func ToFormState(invitation *Invitation) FormState {
	if invitation == nil {
		return DefaultFormState()
	}

	return FormState{
		Attending: invitation.Status == StatusAccepted,
		Email:     invitation.Email,
		Notes:     invitation.Notes,
		Guests: core.Map(invitation.Guests, func(g Guest) FormGuest {
			return FormGuest{ID: g.ID, FirstName: g.FirstName, LastName: g.LastName}
		}),
	}
}

// ParseForm decodes the submitted RSVP form. Guest rows arrive as the
// parallel value lists guest_id, first_name and last_name. The returned
// state is best-effort even when an error is reported, so the form can
// be re-rendered with the visitor's input echoed back.
func ParseForm(values url.Values) (FormState, error) {
	state := FormState{
		// Only the literal "true" counts - anything else is a decline.
		Attending: values.Get("attending") == "true",
		Email:     strings.TrimSpace(values.Get("email")),
		Notes:     strings.TrimSpace(values.Get("notes")),
	}

	ids := values["guest_id"]
	firstNames := values["first_name"]
	lastNames := values["last_name"]

	var invalid []string

	for i := range firstNames {
		guest := FormGuest{
			FirstName: strings.TrimSpace(firstNames[i]),
		}

		if i < len(lastNames) {
			guest.LastName = strings.TrimSpace(lastNames[i])
		}

		if i < len(ids) {
			// Unparseable or absent ids mean "new guest".
			if id, err := strconv.ParseInt(ids[i], 10, 64); err == nil {
				guest.ID = id
			}
		}

		if guest.FirstName == "" && guest.LastName == "" && guest.ID == 0 {
			// Fully blank rows are ignored rather than rejected.
			continue
		}

		if guest.FirstName == "" || guest.LastName == "" {
			invalid = append(invalid, fmt.Sprintf("guest %d is missing a name", i+1))
		}

		state.Guests = append(state.Guests, guest)
	}

	// Declines don't need a guest list - the stored one is kept.
	if state.Attending && len(state.Guests) == 0 {
		invalid = append(invalid, "at least one guest is required")
		state.Guests = []FormGuest{{}}
	}

	if _, err := mail.ParseAddress(state.Email); err != nil {
		invalid = append(invalid, fmt.Sprintf("invalid email address: '%s'", state.Email))
	}

	if len(invalid) > 0 {
		return state, fmt.Errorf("invalid rsvp form: %s", strings.Join(invalid, ", "))
	}

	return state, nil
}
