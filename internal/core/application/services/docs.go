// Package services contains the application services of the coffee shop.
//
// OrderService is the single entry point for order management: it allocates
// order ids, resolves menu names, applies the composition rules, keeps the
// default subscriber set and recomputes totals. All operations are serialised
// by one mutex, so HTTP handlers and background jobs may call it
// concurrently. Subscribers are notified while that mutex is held and must not
// call back into the service.
package services
