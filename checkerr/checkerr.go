// Package checkerr defines the error taxonomy produced by the contract
// checkers. Every error is terminal for the (type, checker) pair that raised
// it; nothing in this package is retried or downgraded.
package checkerr

import (
	"fmt"
	"reflect"
)

// Messages shared by the equality sub-checks. They are part of the public
// contract: callers match on them to distinguish which law was violated.
const (
	MsgEqualsNil        = "Equals should not return true when nil is passed as argument"
	MsgEqualsUnrelated  = "Equals should not return true when object of different type is passed as argument"
	MsgEqualsRandom     = "Two objects with random attributes should not equal"
	MsgEqualsSelf       = "Same object should be equal"
	MsgHashCodeRandom   = "Two objects with different attributes should return different hashCode value"
	MsgToStringStable   = "Same unchanged object should return same toString() value every time"
	MsgToStringDistinct = "Two objects with random attributes should not return same toString() value"
	MsgAccessorPair     = "Getter return value does not correspond to Setter argument used"
)

// RawUseError reports a slice, array or map member declared with an empty
// interface element or key, leaving no safe synthesis strategy.
type RawUseError struct {
	// Member is the signature of the method, constructor or field that
	// declared the raw type.
	Member string
	// Type is the offending collection or map type.
	Type reflect.Type
}

func (e *RawUseError) Error() string {
	return fmt.Sprintf("Raw use assertion error:\n\tError: Raw use of parameterized class: %s\n\tMember: %s",
		e.Type, e.Member)
}

// ConstructorError reports a registered constructor that failed to produce an
// instance when invoked with synthesized arguments.
type ConstructorError struct {
	Constructor string
	Cause       string
}

func (e *ConstructorError) Error() string {
	return fmt.Sprintf("Constructor assertion error:\n\tError: %s\n\tConstructor: %s",
		e.Cause, e.Constructor)
}

// AccessorError reports a mutator/accessor pair whose round trip lost or
// transformed the value.
type AccessorError struct {
	Mutator  string
	Accessor string
	Expected any
	Actual   any
}

func (e *AccessorError) Error() string {
	return fmt.Sprintf("Setter/Getter assertion error:\n\tError: %s\n\tSetter method: %s\n\tGetter method: %s\n\tExpected result: %v\n\tActual result: %v",
		MsgAccessorPair, e.Mutator, e.Accessor, e.Expected, e.Actual)
}

// EqualsError reports a violated Equals law. Message is one of the Msg*
// constants above.
type EqualsError struct {
	Method  string
	Message string
}

func (e *EqualsError) Error() string {
	return fmt.Sprintf("Equals method assertion error:\n\tError: %s\n\tMethod: %s", e.Message, e.Method)
}

// HashCodeError reports a hash collision between two independently
// synthesized instances. Collisions are probabilistically possible but
// treated as hard failures given a sufficiently wide random domain.
type HashCodeError struct {
	Method  string
	Message string
}

func (e *HashCodeError) Error() string {
	return fmt.Sprintf("HashCode method assertion error:\n\tError: %s\n\tMethod: %s", e.Message, e.Method)
}

// ToStringError reports a String method that is not deterministic on an
// unchanged instance.
type ToStringError struct {
	Method  string
	Message string
}

func (e *ToStringError) Error() string {
	return fmt.Sprintf("ToString method assertion error:\n\tError: %s\n\tMethod: %s", e.Message, e.Method)
}

// InvocationError wraps a failure during a reflective call: a panic inside
// the member under test or an invocation the runtime rejected. It indicates a
// bug either in the type under test or in value synthesis.
type InvocationError struct {
	Member string
	Cause  error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("Method invocation exception: %v\n\tMember: %s", e.Cause, e.Member)
}

func (e *InvocationError) Unwrap() error { return e.Cause }

// UnresolvableTypeError is a defensive invariant violation: the resolver was
// handed a type it has no rule for. This is not a user-facing contract.
type UnresolvableTypeError struct {
	Type reflect.Type
}

func (e *UnresolvableTypeError) Error() string {
	return fmt.Sprintf("Unable to resolve type: %s", e.Type)
}

// ScanError reports a namespace the scanner could not locate.
type ScanError struct {
	Package string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("Unable to scan package: %s", e.Package)
}
