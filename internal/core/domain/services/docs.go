// Package services provides stateless domain services that implement
// cross-entity business policies of the autoservice domain.
//
// The package includes:
//   - AccessPolicy: the ownership predicate guarding order mutation
//   - ReviewThrottle: the per-owner rate limit on review submission
//
// Both services are pure: they operate on values handed to them by the
// application layer and perform no I/O themselves.
package services
