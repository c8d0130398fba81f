// Package guard provides ConstructorGuard, a marker embedded into value
// objects, commands and queries so that their Validate methods can tell a
// constructor-built value apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value was built by its constructor.
//
// Example:
//
//	type CancelReason struct {
//	    text  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCancelReason(text string) CancelReason {
//	    return CancelReason{text: text, guard: guard.NewConstructorGuard()}
//	}
//
//	func (r CancelReason) Validate() error {
//	    return r.guard.Validate(ErrCancelReasonIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
