// Package guard lets value objects detect that they were built by their
// constructor rather than declared as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in command and query objects. Its zero value
// fails validation, so a literal like AddMenuItemCommand{} is rejected by the
// handler before it reaches the order service.
//
// Example usage:
//
//	type ChangeStatusCommand struct {
//	    orderID int
//	    status  order.Status
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c ChangeStatusCommand) Validate() error {
//	    return c.guard.Validate(ErrChangeStatusCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
