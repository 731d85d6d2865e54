// Package randgen is the default random value generator: given a type it
// produces a structurally valid instance with pseudo-random attribute values.
// Scalar and string domains come from gofakeit; composite types are built by
// walking the type graph. The domain is deliberately wide so that two
// independently generated instances of the same type are statistically
// distinct.
package randgen

import (
	"fmt"
	"reflect"
	"time"
	"unsafe"

	"github.com/brianvoe/gofakeit/v7"
)

// maxDepth bounds the type-graph walk so self-referential types terminate
// with zero values instead of recursing forever.
const maxDepth = 8

// Fallback is the proxy-substitution hook: it is consulted for interface
// types and anything else the generator has no rule for. Returning false
// leaves the value at its zero value.
type Fallback func(t reflect.Type) (reflect.Value, bool, error)

// Generator produces random instances of arbitrary concrete types.
type Generator struct {
	faker    *gofakeit.Faker
	fallback Fallback
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes generation deterministic for a given seed.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.faker = gofakeit.New(seed)
	}
}

// WithFallback installs the hook consulted for interface and otherwise
// unhandled types.
func WithFallback(fb Fallback) Option {
	return func(g *Generator) {
		g.fallback = fb
	}
}

// New creates a Generator. Without WithSeed the sequence differs per process.
func New(opts ...Option) *Generator {
	g := &Generator{faker: gofakeit.New(0)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var timeType = reflect.TypeOf(time.Time{})

// Create produces a random instance of t.
func (g *Generator) Create(t reflect.Type) (reflect.Value, error) {
	return g.create(t, 0)
}

// CreateWithTypeArgs produces a random instance of a slice, array or map type
// using the supplied element (and key) types for the contained values. The
// args must be assignable to the container's element positions; for any other
// kind the args are ignored and Create applies.
func (g *Generator) CreateWithTypeArgs(t reflect.Type, args []reflect.Type) (reflect.Value, error) {
	switch t.Kind() {
	case reflect.Slice:
		if len(args) != 1 {
			return reflect.Value{}, fmt.Errorf("slice %s needs exactly one type argument, got %d", t, len(args))
		}
		n := g.faker.Number(2, 5)
		out := reflect.MakeSlice(t, n, n)
		for i := 0; i < n; i++ {
			ev, err := g.create(args[0], 0)
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(ev)
		}
		return out, nil
	case reflect.Array:
		if len(args) != 1 {
			return reflect.Value{}, fmt.Errorf("array %s needs exactly one type argument, got %d", t, len(args))
		}
		out := reflect.New(t).Elem()
		for i := 0; i < t.Len(); i++ {
			ev, err := g.create(args[0], 0)
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(ev)
		}
		return out, nil
	case reflect.Map:
		if len(args) != 2 {
			return reflect.Value{}, fmt.Errorf("map %s needs exactly two type arguments, got %d", t, len(args))
		}
		n := g.faker.Number(2, 5)
		out := reflect.MakeMapWithSize(t, n)
		for i := 0; i < n; i++ {
			kv, err := g.create(args[0], 0)
			if err != nil {
				return reflect.Value{}, err
			}
			vv, err := g.create(args[1], 0)
			if err != nil {
				return reflect.Value{}, err
			}
			out.SetMapIndex(kv, vv)
		}
		return out, nil
	default:
		return g.Create(t)
	}
}

func (g *Generator) create(t reflect.Type, depth int) (reflect.Value, error) {
	if depth > maxDepth {
		return reflect.Zero(t), nil
	}
	if t == timeType {
		return reflect.ValueOf(g.faker.Date()), nil
	}

	switch t.Kind() {
	case reflect.Bool:
		return convert(reflect.ValueOf(g.faker.Bool()), t), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return convert(reflect.ValueOf(g.faker.Int64()), t), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return convert(reflect.ValueOf(g.faker.Uint64()), t), nil
	case reflect.Float32, reflect.Float64:
		return convert(reflect.ValueOf(g.faker.Float64()), t), nil
	case reflect.Complex64, reflect.Complex128:
		return convert(reflect.ValueOf(complex(g.faker.Float64(), g.faker.Float64())), t), nil
	case reflect.String:
		return convert(reflect.ValueOf(g.faker.LetterN(16)), t), nil
	case reflect.Pointer:
		out := reflect.New(t.Elem())
		ev, err := g.create(t.Elem(), depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		out.Elem().Set(ev)
		return out, nil
	case reflect.Slice:
		n := g.faker.Number(2, 5)
		out := reflect.MakeSlice(t, n, n)
		for i := 0; i < n; i++ {
			ev, err := g.element(t.Elem(), depth+1)
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(ev)
		}
		return out, nil
	case reflect.Array:
		out := reflect.New(t).Elem()
		for i := 0; i < t.Len(); i++ {
			ev, err := g.element(t.Elem(), depth+1)
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(ev)
		}
		return out, nil
	case reflect.Map:
		n := g.faker.Number(2, 5)
		out := reflect.MakeMapWithSize(t, n)
		for i := 0; i < n; i++ {
			kv, err := g.element(t.Key(), depth+1)
			if err != nil {
				return reflect.Value{}, err
			}
			vv, err := g.element(t.Elem(), depth+1)
			if err != nil {
				return reflect.Value{}, err
			}
			out.SetMapIndex(kv, vv)
		}
		return out, nil
	case reflect.Chan:
		return reflect.MakeChan(t, 1), nil
	case reflect.Struct:
		return g.createStruct(t, depth)
	default:
		return g.fromFallback(t)
	}
}

// element generates a collection element, falling back to the hook for
// interface-typed elements so nested graphs stay lenient: an element the hook
// declines is left at its zero value rather than failing the whole graph.
func (g *Generator) element(t reflect.Type, depth int) (reflect.Value, error) {
	if t.Kind() == reflect.Interface || t.Kind() == reflect.Func {
		v, ok, err := g.tryFallback(t)
		if err != nil {
			return reflect.Value{}, err
		}
		if !ok {
			return reflect.Zero(t), nil
		}
		return v, nil
	}
	return g.create(t, depth)
}

func (g *Generator) createStruct(t reflect.Type, depth int) (reflect.Value, error) {
	out := reflect.New(t).Elem()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv, err := g.element(f.Type, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		if !fv.IsValid() {
			continue
		}
		if f.Type.Kind() == reflect.Interface && fv.IsZero() {
			continue
		}
		setField(out, i, fv)
	}
	return out, nil
}

func (g *Generator) fromFallback(t reflect.Type) (reflect.Value, error) {
	v, ok, err := g.tryFallback(t)
	if err != nil {
		return reflect.Value{}, err
	}
	if !ok {
		return reflect.Zero(t), nil
	}
	return v, nil
}

func (g *Generator) tryFallback(t reflect.Type) (reflect.Value, bool, error) {
	if g.fallback == nil {
		return reflect.Value{}, false, nil
	}
	return g.fallback(t)
}

func convert(v reflect.Value, t reflect.Type) reflect.Value {
	return v.Convert(t)
}

// setField writes a field of an addressable struct value, reaching through
// reflect's export restriction for unexported fields. POJO-style types keep
// state unexported behind accessors, and two generated instances must differ
// in those attributes for the equality and hash checks to mean anything.
func setField(structVal reflect.Value, i int, v reflect.Value) {
	f := structVal.Field(i)
	if f.CanSet() {
		if v.Type().AssignableTo(f.Type()) {
			f.Set(v)
		}
		return
	}
	addr := reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
	if v.Type().AssignableTo(f.Type()) {
		addr.Set(v)
	}
}
