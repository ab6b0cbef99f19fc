package services

import (
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
)

// AccessPolicy is a domain service implementing the ownership rule for order
// mutation: only the order's reader may update or cancel it.
//
// The rule is a single explicit predicate invoked by every mutating use case
// before any state change, rather than behavior inherited by the entities.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanModify reports whether the actor may update or cancel the order.
//
// Returns true iff the actor is authenticated (non-nil), the order has a
// reader, and the two identities are equal. Anonymous actors, unclaimed
// orders, and mismatched identities all yield false.
func (AccessPolicy) CanModify(actor *kernel.UUID, o *order.Order) bool {
	if actor == nil || o == nil {
		return false
	}

	reader := o.Reader()
	if reader == nil {
		return false
	}

	return reader.IsEqual(*actor)
}
