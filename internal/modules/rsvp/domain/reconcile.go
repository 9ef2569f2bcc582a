package domain

// GuestDiff is the set of guest writes one submission produces. The
// create and update sets keep the submitted order via Guest.Position.
type GuestDiff struct {
	Create []Guest
	Update []Guest
	Delete []int64
}

func (d GuestDiff) Empty() bool {
	return len(d.Create) == 0 && len(d.Update) == 0 && len(d.Delete) == 0
}

// ReconcileResult is the full outcome of reconciling a submission
// against the stored invitation. It lives for one request only.
type ReconcileResult struct {
	Status Status
	Email  string
	Notes  string
	Guests GuestDiff
}

// Reconcile computes what a submission changes about the stored
// invitation (which may be nil for first-time submissions).
//
// A decline only transitions the status - the stored guest list is kept
// as-is so the data is still there if the guests change their mind.
//
// An accept partitions the submitted guests by identity: rows without an
// id become creates, rows whose id matches a stored guest become
// updates, and rows with an unknown id are dropped silently - a client
// must not be able to touch another invitation's guest by guessing an
// id. Stored guests absent from the submission are deleted.
func Reconcile(existing *Invitation, submitted FormState) ReconcileResult {
	result := ReconcileResult{
		Email: submitted.Email,
		Notes: submitted.Notes,
	}

	if !submitted.Attending {
		result.Status = StatusRejected
		return result
	}

	result.Status = StatusAccepted

	submittedIDs := make(map[int64]struct{}, len(submitted.Guests))

	position := 0
	for _, formGuest := range submitted.Guests {
		if formGuest.ID == 0 {
			result.Guests.Create = append(result.Guests.Create, Guest{
				FirstName: formGuest.FirstName,
				LastName:  formGuest.LastName,
				Position:  position,
			})
			position++
			continue
		}

		if existing == nil {
			continue
		}

		if _, found := existing.guestByID(formGuest.ID); !found {
			// Foreign or stale id - drop the row.
			continue
		}

		submittedIDs[formGuest.ID] = struct{}{}
		result.Guests.Update = append(result.Guests.Update, Guest{
			ID:        formGuest.ID,
			FirstName: formGuest.FirstName,
			LastName:  formGuest.LastName,
			Position:  position,
		})
		position++
	}

	if existing != nil {
		for _, stored := range existing.Guests {
			if _, found := submittedIDs[stored.ID]; !found {
				result.Guests.Delete = append(result.Guests.Delete, stored.ID)
			}
		}
	}

	return result
}
