// Package order implements the Order aggregate of the coffee shop: the lines a
// customer is buying, the preparation status, the discount and the parties
// that want to hear about lifecycle events.
//
// The package includes:
//   - Order: the aggregate root holding lines, status, discount and subscribers
//   - Line: an immutable purchased item with its add-ons
//   - Status: Created, Preparing, Ready and Paid, with display labels
//   - Subscriber and Event: the synchronous notification contract
//
// Key business rules:
//   - A status change must name a recognised status different from the current one
//   - Any distinct status may follow any other; Paid does not block later changes
//   - The discount percent always stays within [0, 100]
//   - Add-ons attach only to beverages and are never a line's primary item
//   - Events reach subscribers synchronously, in registration order, and the
//     first subscriber error stops delivery and is returned to the caller
//
// The cached total is a display value. It changes only when CalculateTotal is
// called, so callers recompute it after every mutation they want to show.
package order
