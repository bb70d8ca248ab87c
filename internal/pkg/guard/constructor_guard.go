// Package guard provides a defensive construction marker for domain objects.
// Embedding a ConstructorGuard in a struct makes it possible to detect whether
// the struct was created through its designated constructor or as a zero value,
// which keeps domain invariants enforceable at validation time.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// constructor function. The zero value fails validation, so any struct that
// embeds a guard and is instantiated directly will be rejected.
//
// Example:
//
//	type Money struct {
//	    amountCents int
//	    guard       guard.ConstructorGuard
//	}
//
//	func NewMoney(amountCents int) (Money, error) {
//	    if amountCents < 0 {
//	        return Money{}, errors.New("amount cannot be negative")
//	    }
//	    return Money{amountCents: amountCents, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed. Call it in every domain constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// For zero-value objects it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
