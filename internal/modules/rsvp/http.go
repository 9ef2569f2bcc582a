package rsvp

import (
	"net/http"

	"github.com/hrgovic/wedding-site/internal/modules/core"
	"github.com/hrgovic/wedding-site/internal/modules/rsvp/commands"
	"github.com/hrgovic/wedding-site/internal/modules/rsvp/domain"
	"github.com/hrgovic/wedding-site/internal/modules/rsvp/queries"
	"github.com/hrgovic/wedding-site/internal/modules/session"

	"github.com/eskrenkovic/mediator-go"
	"github.com/go-chi/chi"
	"go.uber.org/zap"
)

// CodeFormData drives the shared code-prompt template. Action is the
// URL the prompt posts back to.
type CodeFormData struct {
	Action         string
	InvalidCode    bool
	SessionExpired bool
}

type ConfirmFormData struct {
	Form         domain.FormState
	EmailTaken   bool
	InvalidInput bool
	Saved        bool
}

type HTTPHandler struct {
	gate     *Gate
	sessions *session.Store
	renderer *core.Renderer
	logger   *zap.Logger
}

func NewHTTPHandler(
	gate *Gate,
	sessions *session.Store,
	renderer *core.Renderer,
	logger *zap.Logger,
) *HTTPHandler {
	return &HTTPHandler{gate: gate, sessions: sessions, renderer: renderer, logger: logger}
}

func (h *HTTPHandler) HandleGetRsvp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := session.FromContext(ctx)

	if !sess.Authorized {
		h.renderer.Render(w, "rsvp-code.html", CodeFormData{Action: "/rsvp"})
		return
	}

	if !sess.InvitationID.Valid {
		h.renderConfirmForm(w, ConfirmFormData{Form: domain.DefaultFormState()})
		return
	}

	invitation, err := mediator.Send[queries.GetInvitationQuery, *domain.Invitation](
		ctx,
		queries.GetInvitationQuery{ID: sess.InvitationID.Int64},
	)
	if err != nil {
		h.renderError(w, err)
		return
	}

	if invitation == nil {
		// The bound invitation is gone - clear the stale binding and
		// fall back to a blank form.
		sess.ClearInvitation()
		if err := session.Commit(ctx, w, h.sessions, sess); err != nil {
			h.renderError(w, err)
			return
		}

		h.renderConfirmForm(w, ConfirmFormData{Form: domain.DefaultFormState()})
		return
	}

	h.renderConfirmForm(w, ConfirmFormData{Form: domain.ToFormState(invitation)})
}

func (h *HTTPHandler) HandlePostRsvp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.RenderStatus(w, http.StatusBadRequest, "rsvp-code.html", CodeFormData{Action: "/rsvp"})
		return
	}

	// A submitted code and a submitted RSVP arrive on the same URL.
	if _, hasCode := r.PostForm["code"]; hasCode {
		h.handleCodeSubmission(w, r, r.PostForm.Get("code"))
		return
	}

	h.handleRsvpSubmission(w, r)
}

// HandleRedeemCode redeems a shareable invitation link (GET /rsvp/{code})
// and redirects to the RSVP form.
func (h *HTTPHandler) HandleRedeemCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := session.FromContext(ctx)

	result, err := h.gate.Authorize(ctx, sess, chi.URLParam(r, "code"))
	if err != nil {
		h.renderError(w, err)
		return
	}

	if result.Status == AuthStatusAuthorized {
		if err := session.Commit(ctx, w, h.sessions, sess); err != nil {
			h.renderError(w, err)
			return
		}
	}

	http.Redirect(w, r, "/rsvp", http.StatusSeeOther)
}

func (h *HTTPHandler) handleCodeSubmission(w http.ResponseWriter, r *http.Request, code string) {
	ctx := r.Context()
	sess := session.FromContext(ctx)

	result, err := h.gate.Authorize(ctx, sess, code)
	if err != nil {
		h.renderError(w, err)
		return
	}

	switch result.Status {
	case AuthStatusAuthorized:
		if err := session.Commit(ctx, w, h.sessions, sess); err != nil {
			h.renderError(w, err)
			return
		}

		invitation := result.Invitation
		if invitation == nil && sess.InvitationID.Valid {
			invitation, err = mediator.Send[queries.GetInvitationQuery, *domain.Invitation](
				ctx,
				queries.GetInvitationQuery{ID: sess.InvitationID.Int64},
			)
			if err != nil {
				h.renderError(w, err)
				return
			}
		}

		h.renderConfirmForm(w, ConfirmFormData{Form: domain.ToFormState(invitation)})
	case AuthStatusInvalidCode:
		h.renderer.Render(w, "rsvp-code.html", CodeFormData{Action: "/rsvp", InvalidCode: true})
	default:
		h.renderer.Render(w, "rsvp-code.html", CodeFormData{Action: "/rsvp"})
	}
}

func (h *HTTPHandler) handleRsvpSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := session.FromContext(ctx)

	if !sess.Authorized {
		// The session expired between rendering the form and submitting it.
		h.renderer.Render(w, "rsvp-code.html", CodeFormData{Action: "/rsvp", SessionExpired: true})
		return
	}

	form, err := domain.ParseForm(r.PostForm)
	if err != nil {
		h.renderConfirmForm(w, ConfirmFormData{Form: form, InvalidInput: true})
		return
	}

	command := commands.SubmitRsvpCommand{Form: form}
	if sess.InvitationID.Valid {
		command.InvitationID = sess.InvitationID.Int64
	}

	response, err := mediator.Send[commands.SubmitRsvpCommand, commands.SubmitRsvpResponse](ctx, command)
	if err != nil {
		h.renderError(w, err)
		return
	}

	if response.EmailTaken {
		h.renderConfirmForm(w, ConfirmFormData{Form: form, EmailTaken: true})
		return
	}

	// The command may have created a fresh invitation when the bound one
	// no longer exists, so rebind unconditionally. First-bind-wins only
	// applies to code redemption in the gate.
	sess.ClearInvitation()
	sess.BindInvitation(response.Invitation.ID)
	if err := session.Commit(ctx, w, h.sessions, sess); err != nil {
		h.renderError(w, err)
		return
	}

	h.renderConfirmForm(w, ConfirmFormData{Form: domain.ToFormState(&response.Invitation), Saved: true})
}

func (h *HTTPHandler) renderConfirmForm(w http.ResponseWriter, data ConfirmFormData) {
	h.renderer.Render(w, "rsvp-confirm.html", data)
}

func (h *HTTPHandler) renderError(w http.ResponseWriter, err error) {
	h.logger.Error("rsvp request failed", zap.Error(err))
	h.renderer.RenderStatus(w, http.StatusInternalServerError, "rsvp-error.html", nil)
}
