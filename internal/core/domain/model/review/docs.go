// Package review provides the OrderReview entity: a free-text comment a
// customer leaves on an order's detail page.
//
// Reviews are append-only. They are never updated or deleted, and their
// creation time is fixed at construction. Submission is rate limited per
// owner by the review throttle in the domain services package.
package review
