package rsvp

import (
	"context"
	"strings"

	"github.com/hrgovic/wedding-site/internal/modules/rsvp/domain"
	"github.com/hrgovic/wedding-site/internal/modules/session"
)

type AuthStatus int

const (
	// AuthStatusAuthorized - the session may see gated pages.
	AuthStatusAuthorized AuthStatus = iota
	// AuthStatusNoCode - nothing was submitted, show the bare prompt.
	AuthStatusNoCode
	// AuthStatusInvalidCode - a code was submitted but matched nothing.
	AuthStatusInvalidCode
)

type AuthResult struct {
	Status AuthStatus
	// Invitation is set when a shareable per-invitation code was
	// redeemed in this call.
	Invitation *domain.Invitation
}

// CodeDirectory resolves shareable invitation codes. A miss is (nil, nil).
type CodeDirectory interface {
	FindByCode(ctx context.Context, code string) (*domain.Invitation, error)
}

// Gate guards the RSVP and photo pages behind the shared passcode or a
// per-invitation code.
type Gate struct {
	passcode string
	codes    CodeDirectory
}

func NewGate(passcode string, codes CodeDirectory) *Gate {
	return &Gate{passcode: passcode, codes: codes}
}

// Authorize checks the submitted code against the shared passcode and
// the invitation codes. An already-authorized session passes through
// without any comparison. The session is mutated only on success;
// persisting the mutation is the caller's job.
func (g *Gate) Authorize(ctx context.Context, sess *session.Session, submittedCode string) (AuthResult, error) {
	if sess.Authorized {
		return AuthResult{Status: AuthStatusAuthorized}, nil
	}

	submittedCode = strings.TrimSpace(submittedCode)
	if submittedCode == "" {
		return AuthResult{Status: AuthStatusNoCode}, nil
	}

	if strings.EqualFold(submittedCode, g.passcode) {
		sess.Authorized = true
		return AuthResult{Status: AuthStatusAuthorized}, nil
	}

	invitation, err := g.codes.FindByCode(ctx, submittedCode)
	if err != nil {
		return AuthResult{}, err
	}

	if invitation == nil {
		return AuthResult{Status: AuthStatusInvalidCode}, nil
	}

	sess.Authorized = true
	sess.BindInvitation(invitation.ID)

	return AuthResult{Status: AuthStatusAuthorized, Invitation: invitation}, nil
}
