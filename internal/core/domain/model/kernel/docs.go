// Package kernel provides the shared value objects of the autoservice domain.
//
// It contains:
//   - UUID: identity value object wrapping github.com/google/uuid
//   - Money: decimal money value object with two fraction digits
//
// Kernel types are immutable, validated at construction, and carry no
// behavior specific to any single aggregate. They are used as building blocks
// by the catalog, order, and review models.
package kernel
