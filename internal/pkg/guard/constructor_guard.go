// Package guard provides the ConstructorGuard value used to enforce that domain
// objects, commands, and queries are created through their constructor functions
// rather than by direct struct instantiation.
//
// A zero-value guard fails validation; only guards produced by NewConstructorGuard
// pass. Embedding a guard in a struct therefore makes the zero value of that struct
// detectably invalid.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no custom error is provided
// and the guarded object was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// The zero value is invalid; obtain instances via NewConstructorGuard.
// ConstructorGuard is immutable and safe for concurrent use.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
// Constructors embed the result into the object they build.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil if the guard was created via NewConstructorGuard.
// For a zero-value guard it returns notConstructedErr, or
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
