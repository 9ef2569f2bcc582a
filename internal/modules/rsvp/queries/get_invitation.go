package queries

import (
	"context"
	"fmt"

	"github.com/hrgovic/wedding-site/internal/modules/rsvp/domain"
)

type GetInvitationQuery struct {
	ID int64
}

func (q GetInvitationQuery) Validate() error {
	if q.ID == 0 {
		return fmt.Errorf("invalid ID - '%d'", q.ID)
	}

	return nil
}

type GetInvitationQueryHandler struct {
	directory *InvitationDirectory
}

func NewGetInvitationQueryHandler(directory *InvitationDirectory) *GetInvitationQueryHandler {
	return &GetInvitationQueryHandler{directory}
}

// Handle returns (nil, nil) when the invitation no longer exists - the
// caller decides how to recover from a stale session binding.
func (h *GetInvitationQueryHandler) Handle(
	ctx context.Context,
	request GetInvitationQuery,
) (*domain.Invitation, error) {
	return h.directory.FindByID(ctx, request.ID)
}
