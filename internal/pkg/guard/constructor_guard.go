// Package guard implements a constructor guard for value objects and entities.
// Embedding a ConstructorGuard in a struct makes it possible to detect whether
// the struct was produced by its designated constructor or is a zero value,
// which keeps domain invariants from being bypassed by direct initialization.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is provided, ensuring validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether the enclosing object went through its
// constructor. The zero value fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it only from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a guard created via NewConstructorGuard.
// For a zero-value guard it returns err, or ErrDefaultConstructorGuard
// when err is nil.
func (g ConstructorGuard) Validate(err error) error {
	if g.isConstructed {
		return nil
	}
	if err == nil {
		return ErrDefaultConstructorGuard
	}
	return err
}
