// Package guard provides a small helper for enforcing constructor usage on
// value objects and commands. A zero-value struct embedding ConstructorGuard
// fails validation until it is built through its New* constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no custom error
// is supplied for an object that bypassed its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// The zero value is "not constructed"; NewConstructorGuard flips the flag.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
// Embed the result in objects created through their constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for constructed objects. For zero-value objects it
// returns the supplied error, or ErrDefaultConstructorGuard when err is nil.
func (g ConstructorGuard) Validate(err error) error {
	if g.constructed {
		return nil
	}

	if err != nil {
		return err
	}

	return ErrDefaultConstructorGuard
}
