// Package menu models what a coffee shop sells.
//
// The package includes:
//   - Category: the tag that separates beverages, desserts and add-ons
//   - Item: a named, priced catalog entry carrying its Category
//   - Catalog: a read-only, order-preserving lookup over a fixed item list
//
// Beverages, desserts and add-ons share one Item type. Behaviour that depends
// on the kind of item (for example, which items accept add-ons) switches on
// the Category tag instead of on distinct types.
package menu
