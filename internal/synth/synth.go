// Package synth orchestrates value synthesis: it combines the random value
// generator, the type resolver and the proxy registry to produce an instance
// for any member type the checkers encounter.
package synth

import (
	"reflect"

	"github.com/dbsmedya/pojocheck/checkerr"
	"github.com/dbsmedya/pojocheck/internal/logger"
	"github.com/dbsmedya/pojocheck/internal/resolve"
	"github.com/dbsmedya/pojocheck/proxy"
	"github.com/dbsmedya/pojocheck/randgen"
)

// Generator is the random value generator collaborator. randgen.Generator is
// the default implementation.
type Generator interface {
	Create(t reflect.Type) (reflect.Value, error)
	CreateWithTypeArgs(t reflect.Type, args []reflect.Type) (reflect.Value, error)
}

// Synthesizer produces random values for member types.
type Synthesizer struct {
	gen Generator
	log *logger.Logger
}

// metaType is the reflect.Type interface itself: there is no meaningful
// random "type" to synthesize, so such parameters receive a fixed textual
// type token.
var metaType = reflect.TypeOf((*reflect.Type)(nil)).Elem()

// New wraps an externally supplied generator.
func New(gen Generator, log *logger.Logger) *Synthesizer {
	if log == nil {
		log = logger.Nop()
	}
	return &Synthesizer{gen: gen, log: log}
}

// NewDefault builds a Synthesizer over the default randgen generator, with
// the synthesizer installed as the generator's fallback hook so interface
// values nested anywhere in a generated graph become proxy stand-ins.
func NewDefault(log *logger.Logger, opts ...randgen.Option) *Synthesizer {
	s := New(nil, log)
	opts = append(opts, randgen.WithFallback(s.fallback))
	s.gen = randgen.New(opts...)
	return s
}

// Create synthesizes a value of type t.
func (s *Synthesizer) Create(t reflect.Type) (reflect.Value, error) {
	switch {
	case t == metaType:
		return reflect.ValueOf(resolve.Placeholder), nil
	case t.Kind() == reflect.Interface && t.NumMethod() == 0:
		return s.gen.Create(resolve.Placeholder)
	case t.Kind() == reflect.Interface:
		if v, ok := proxy.For(t); ok {
			return v, nil
		}
		return reflect.Value{}, &checkerr.UnresolvableTypeError{Type: t}
	case t.Kind() == reflect.Func:
		return noopFunc(t), nil
	}

	resolved, err := resolve.Resolve(t)
	if err != nil {
		return reflect.Value{}, err
	}
	if len(resolved.Args) > 0 {
		return s.gen.CreateWithTypeArgs(resolved.Type, resolved.ArgTypes())
	}
	return s.gen.Create(resolved.Type)
}

// CreateFor synthesizes a value for a specific member, stamping the member
// signature into any raw-use failure.
func (s *Synthesizer) CreateFor(memberSignature string, t reflect.Type) (reflect.Value, error) {
	v, err := s.Create(t)
	if raw, ok := err.(*checkerr.RawUseError); ok {
		return reflect.Value{}, &checkerr.RawUseError{Member: memberSignature, Type: raw.Type}
	}
	return v, err
}

// NewInstance synthesizes an addressable instance of a struct type and
// returns a pointer to it, ready for method invocation through the pointer
// method set.
func (s *Synthesizer) NewInstance(t reflect.Type) (reflect.Value, error) {
	v, err := s.gen.Create(t)
	if err != nil {
		return reflect.Value{}, err
	}
	ptr := reflect.New(t)
	ptr.Elem().Set(v)
	return ptr, nil
}

// fallback is the proxy-substitution hook handed to the generator. It covers
// the positions the generator cannot fill itself: interfaces, funcs and the
// reflect.Type meta-type. Declining (false) leaves a zero value, keeping
// deeply nested graphs lenient.
func (s *Synthesizer) fallback(t reflect.Type) (reflect.Value, bool, error) {
	switch {
	case t == metaType:
		return reflect.ValueOf(resolve.Placeholder), true, nil
	case t.Kind() == reflect.Interface && t.NumMethod() == 0:
		v, err := s.gen.Create(resolve.Placeholder)
		if err != nil {
			return reflect.Value{}, false, err
		}
		return v, true, nil
	case t.Kind() == reflect.Interface:
		if v, ok := proxy.For(t); ok {
			return v, true, nil
		}
		s.log.Debugf("no proxy stand-in registered for %s, leaving zero value", t)
		return reflect.Value{}, false, nil
	case t.Kind() == reflect.Func:
		return noopFunc(t), true, nil
	default:
		return reflect.Value{}, false, nil
	}
}

// noopFunc builds a function value of the given type whose implementation
// returns zero values, the functional analog of a proxy stand-in.
func noopFunc(t reflect.Type) reflect.Value {
	return reflect.MakeFunc(t, func([]reflect.Value) []reflect.Value {
		out := make([]reflect.Value, t.NumOut())
		for i := range out {
			out[i] = reflect.Zero(t.Out(i))
		}
		return out
	})
}
