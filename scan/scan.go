// Package scan is the class discovery collaborator: a registry of types
// grouped by a package-like namespace. Runtime reflection cannot enumerate
// the types of a Go package, so types under test (and their constructor
// functions) are registered here, typically from an init function next to the
// model types themselves.
package scan

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/dbsmedya/pojocheck/checkerr"
)

// Registered is one type known to the registry together with its registered
// constructor functions.
type Registered struct {
	Type         reflect.Type
	Constructors []reflect.Value
}

// Entry is a single registration produced by Class.
type Entry struct {
	reg Registered
}

var (
	mu       sync.RWMutex
	packages = map[string][]Registered{}
	byType   = map[reflect.Type][]reflect.Value{}
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Class describes the type T for registration. Constructors are factory
// functions returning T or *T, optionally with a trailing error result; they
// are validated here so the constructor checker never sees a malformed
// factory.
func Class[T any](constructors ...any) Entry {
	t := reflect.TypeOf((*T)(nil)).Elem()
	ctors := make([]reflect.Value, 0, len(constructors))
	for _, c := range constructors {
		v := reflect.ValueOf(c)
		if err := validateConstructor(t, v); err != nil {
			panic(fmt.Sprintf("scan: invalid constructor for %s: %v", t, err))
		}
		ctors = append(ctors, v)
	}
	return Entry{reg: Registered{Type: t, Constructors: ctors}}
}

func validateConstructor(t reflect.Type, v reflect.Value) error {
	if !v.IsValid() || v.Kind() != reflect.Func {
		return fmt.Errorf("not a function")
	}
	ft := v.Type()
	if ft.NumOut() == 0 || ft.NumOut() > 2 {
		return fmt.Errorf("must return the constructed value, optionally with an error")
	}
	out := ft.Out(0)
	if out != t && !(out.Kind() == reflect.Pointer && out.Elem() == t) {
		return fmt.Errorf("first result is %s, want %s or *%s", out, t, t)
	}
	if ft.NumOut() == 2 && !ft.Out(1).Implements(errType) {
		return fmt.Errorf("second result must be an error")
	}
	return nil
}

// Register adds the given classes under a namespace. Registering the same
// namespace again appends to it.
func Register(pkg string, classes ...Entry) {
	mu.Lock()
	defer mu.Unlock()
	for _, c := range classes {
		packages[pkg] = append(packages[pkg], c.reg)
		byType[c.reg.Type] = append(byType[c.reg.Type], c.reg.Constructors...)
	}
}

// FindAll returns every type registered under the namespace, sorted by type
// name. Unknown namespaces fail with a ScanError.
func FindAll(pkg string) ([]Registered, error) {
	mu.RLock()
	regs, ok := packages[pkg]
	mu.RUnlock()
	if !ok {
		return nil, &checkerr.ScanError{Package: pkg}
	}
	out := make([]Registered, len(regs))
	copy(out, regs)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Type.String() < out[j].Type.String()
	})
	return out, nil
}

// Packages returns the names of all registered namespaces, sorted.
func Packages() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(packages))
	for name := range packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ConstructorsFor returns the constructor functions registered for a type,
// whether it was registered through a namespace or not.
func ConstructorsFor(t reflect.Type) []reflect.Value {
	mu.RLock()
	defer mu.RUnlock()
	ctors := byType[t]
	out := make([]reflect.Value, len(ctors))
	copy(out, ctors)
	return out
}

// Reset clears the registry. Intended for tests that need isolated
// registrations.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	packages = map[string][]Registered{}
	byType = map[reflect.Type][]reflect.Value{}
}
