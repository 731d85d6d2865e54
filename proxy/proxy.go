// Package proxy provides synthetic stand-in instances for interface types.
//
// Go has no runtime analog of dynamic proxies, so stand-ins are registered
// per interface ahead of time: the checkers look up a factory here whenever a
// field, parameter or collection element is interface-typed. Stubs for a few
// ubiquitous interfaces ship built in; callers register factories for their
// own interfaces with Register.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
)

// Tag is the fixed descriptive value stand-in instances expose through
// String and Read.
const Tag = "pojocheck proxy instance"

var (
	mu        sync.RWMutex
	factories = map[reflect.Type]func() reflect.Value{}
)

// Stub is the default stand-in implementation used for fmt.Stringer and as a
// template for user stubs: String yields a fixed tag, identity follows the
// pointer, and it carries no behavior.
type Stub struct{}

// String implements fmt.Stringer with a fixed descriptive tag.
func (s *Stub) String() string { return Tag }

// Register installs a factory producing stand-ins for the interface type T.
// Registering a non-interface type panics: concrete types are synthesized by
// the generator, never proxied.
func Register[T any](factory func() T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Interface {
		panic(fmt.Sprintf("proxy: %s is not an interface type", t))
	}
	mu.Lock()
	defer mu.Unlock()
	factories[t] = func() reflect.Value {
		return reflect.ValueOf(factory())
	}
}

// For returns a stand-in value for the given interface type, reporting
// whether a factory is registered for it.
func For(t reflect.Type) (reflect.Value, bool) {
	mu.RLock()
	factory, ok := factories[t]
	mu.RUnlock()
	if !ok {
		return reflect.Value{}, false
	}
	return factory(), true
}

// Registered reports whether a stand-in factory exists for the type.
func Registered(t reflect.Type) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := factories[t]
	return ok
}

func init() {
	Register(func() error { return errors.New(Tag) })
	Register(func() fmt.Stringer { return &Stub{} })
	Register(func() io.Reader { return strings.NewReader(Tag) })
	Register(func() io.Writer { return io.Discard })
	Register(func() context.Context { return context.Background() })
}
