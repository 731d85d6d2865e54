// Package resolve converts reflective type descriptors into concrete,
// synthesizable type bindings. Resolution never guesses: a member whose
// declaration carries no usable element type fails instead of producing an
// invalid instantiation request.
package resolve

import (
	"reflect"

	"github.com/dbsmedya/pojocheck/checkerr"
	"github.com/dbsmedya/pojocheck/proxy"
)

// Placeholder is the universal textual stand-in type substituted for bare
// empty-interface positions. Wildcard-like declarations are rarely
// load-bearing for structural checks, and a string is always assignable to
// an empty interface.
var Placeholder = reflect.TypeOf("")

// Resolved is a concrete type token plus the resolved bindings for its
// element positions. A resolved map always carries exactly two args (key,
// element); a slice, array or chan exactly one; everything else none.
type Resolved struct {
	Type reflect.Type
	Args []Resolved
}

// ArgTypes returns the arg type tokens, for handing to the generator.
func (r Resolved) ArgTypes() []reflect.Type {
	if len(r.Args) == 0 {
		return nil
	}
	out := make([]reflect.Type, len(r.Args))
	for i, a := range r.Args {
		out[i] = a.Type
	}
	return out
}

// Resolve applies the resolution rules recursively:
//
//  1. Concrete types resolve to themselves.
//  2. Slices, arrays, maps and chans resolve to themselves plus recursively
//     resolved element (and key) bindings.
//  3. A bare empty interface resolves to the textual placeholder type.
//  4. An empty-interface element or key inside a slice, array or map is raw
//     use: the declaration gives synthesis nothing to work with, and the
//     failure carries the offending collection type (the caller fills in the
//     member signature).
//  5. A non-empty interface resolves to itself when a proxy stand-in is
//     registered for it, and fails otherwise.
//
// Anything else fails with an UnresolvableTypeError; that is an invariant
// violation, not a user-facing contract.
func Resolve(t reflect.Type) (Resolved, error) {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String, reflect.Struct, reflect.Func:
		return Resolved{Type: t}, nil

	case reflect.Pointer:
		if _, err := Resolve(t.Elem()); err != nil {
			return Resolved{}, retype(err, t)
		}
		return Resolved{Type: t}, nil

	case reflect.Slice, reflect.Array, reflect.Chan:
		if isEmptyInterface(t.Elem()) {
			return Resolved{}, &checkerr.RawUseError{Type: t}
		}
		elem, err := Resolve(t.Elem())
		if err != nil {
			return Resolved{}, retype(err, t)
		}
		return Resolved{Type: t, Args: []Resolved{elem}}, nil

	case reflect.Map:
		if isEmptyInterface(t.Key()) || isEmptyInterface(t.Elem()) {
			return Resolved{}, &checkerr.RawUseError{Type: t}
		}
		key, err := Resolve(t.Key())
		if err != nil {
			return Resolved{}, retype(err, t)
		}
		elem, err := Resolve(t.Elem())
		if err != nil {
			return Resolved{}, retype(err, t)
		}
		return Resolved{Type: t, Args: []Resolved{key, elem}}, nil

	case reflect.Interface:
		if t.NumMethod() == 0 {
			return Resolved{Type: Placeholder}, nil
		}
		if proxy.Registered(t) {
			return Resolved{Type: t}, nil
		}
		return Resolved{}, &checkerr.UnresolvableTypeError{Type: t}

	default:
		return Resolved{}, &checkerr.UnresolvableTypeError{Type: t}
	}
}

// retype lifts a nested raw-use failure so the reported type is the
// outermost collection the member actually declared.
func retype(err error, outer reflect.Type) error {
	if raw, ok := err.(*checkerr.RawUseError); ok {
		return &checkerr.RawUseError{Member: raw.Member, Type: outer}
	}
	return err
}

func isEmptyInterface(t reflect.Type) bool {
	return t.Kind() == reflect.Interface && t.NumMethod() == 0
}
