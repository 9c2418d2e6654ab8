// Package services provides domain services for the coffee shop: business
// rules that need more than one aggregate or a catalog lookup and so do not
// belong to a single entity.
//
// The package includes:
//   - LineComposer: resolves menu names and builds an order line that obeys
//     the composition rules
package services
