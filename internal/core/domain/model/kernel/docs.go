// Package kernel provides the shared value objects of the coffee shop domain.
//
// The package includes:
//   - UUID: identity of order lines and journal events
//   - Percent: a discount rate constrained to the inclusive range [0, 100]
//
// Both types are immutable and reject their zero value where a zero value
// would be meaningless (a nil UUID). A zero Percent is a valid "no discount".
package kernel
