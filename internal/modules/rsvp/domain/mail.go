package domain

import (
	"fmt"
	"html"
	"strings"

	"github.com/hrgovic/wedding-site/internal/modules/core"
)

// ConfirmationEmail is the thank-you mail sent to the address on the
// invitation after a successful RSVP.
func ConfirmationEmail(invitation Invitation, sender string) core.MailMessage {
	var b strings.Builder

	b.WriteString("<html><body>")
	if invitation.Status == StatusAccepted {
		b.WriteString("<h1>See you there!</h1>")
		b.WriteString("<p>Your RSVP is confirmed for:</p><ul>")
		for _, guest := range invitation.Guests {
			fmt.Fprintf(&b, "<li>%s %s</li>", html.EscapeString(guest.FirstName), html.EscapeString(guest.LastName))
		}
		b.WriteString("</ul>")
	} else {
		b.WriteString("<h1>Sorry you can't make it</h1>")
		b.WriteString("<p>We've recorded that you won't be attending. ")
		b.WriteString("You can change your answer any time before the big day.</p>")
	}
	b.WriteString("</body></html>")

	return core.MailMessage{
		Subject:    "RSVP Confirmed!",
		From:       sender,
		To:         []string{invitation.Email},
		BodyString: b.String(),
		IsHTML:     true,
	}
}

// DetailsEmail is the back-office mail sent to the couple with the full
// contents of a new or changed RSVP.
func DetailsEmail(invitation Invitation, created bool, sender string, to string) core.MailMessage {
	action := "updated"
	if created {
		action = "received"
	}

	var b strings.Builder

	b.WriteString("<html><body>")
	fmt.Fprintf(&b, "<h1>RSVP %s</h1>", action)
	fmt.Fprintf(&b, "<p>Status: %s</p>", invitation.Status)
	fmt.Fprintf(&b, "<p>Email: %s</p>", html.EscapeString(invitation.Email))
	if invitation.Notes != "" {
		fmt.Fprintf(&b, "<p>Notes: %s</p>", html.EscapeString(invitation.Notes))
	}
	b.WriteString("<ul>")
	for _, guest := range invitation.Guests {
		fmt.Fprintf(&b, "<li>%s %s</li>", html.EscapeString(guest.FirstName), html.EscapeString(guest.LastName))
	}
	b.WriteString("</ul></body></html>")

	return core.MailMessage{
		Subject:    fmt.Sprintf("RSVP %s (%d guests)", action, len(invitation.Guests)),
		From:       sender,
		To:         []string{to},
		BodyString: b.String(),
		IsHTML:     true,
	}
}
