package services

import (
	"time"
)

// ReviewThrottleWindow is the rolling window within which an owner may post
// at most one review, across all orders.
const ReviewThrottleWindow = time.Minute

// ReviewThrottle is a domain service implementing the review submission rate
// limit: an owner may not post a second review within a rolling 60-second
// window of their previous one, regardless of which order it was on.
//
// The service is pure. The application layer supplies the creation time of
// the owner's most recent review (from the repository) and the current time;
// enforcement is therefore best-effort under concurrent submissions. Exact
// enforcement would require a uniqueness/window constraint at the data layer.
type ReviewThrottle struct{}

// NewReviewThrottle creates a new ReviewThrottle instance.
func NewReviewThrottle() ReviewThrottle {
	return ReviewThrottle{}
}

// CanPost reports whether an owner whose most recent review was created at
// lastReviewAt may post another review at now.
//
// A nil lastReviewAt (no prior review) always allows posting. Otherwise
// posting is allowed only when the previous review is at least
// ReviewThrottleWindow old.
func (ReviewThrottle) CanPost(lastReviewAt *time.Time, now time.Time) bool {
	if lastReviewAt == nil {
		return true
	}

	return !lastReviewAt.After(now.Add(-ReviewThrottleWindow))
}
