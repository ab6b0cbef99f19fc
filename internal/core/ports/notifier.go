package ports

import "context"

// Notifier is the user-facing message sink. Handlers push short success and
// error strings for end-user display; delivery is fire-and-forget with no
// guarantee, so implementations must never fail the calling operation.
type Notifier interface {
	// Notify sends a short message to the given user. A nil error is not a
	// delivery guarantee.
	Notify(ctx context.Context, userID string, message string)
}
