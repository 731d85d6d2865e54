// Package member implements member discovery and filtering: enumerating the
// fields and methods of a type under test and deciding which of them the
// checkers may touch.
package member

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Field describes one field under test, including fields promoted through
// embedded structs.
type Field struct {
	Name      string
	Type      reflect.Type
	Declaring reflect.Type
}

// Signature renders the field for exclusion matching and failure messages.
func (f Field) Signature() string {
	return fmt.Sprintf("%s.%s %s", f.Declaring, f.Name, f.Type)
}

// Method describes one invocable method of the pointer method set.
type Method struct {
	reflect.Method
	Receiver reflect.Type
}

// Fields enumerates the fields of a struct type and of every embedded struct
// beneath it (the inheritance chain analog). The embedded fields themselves
// are not returned, only what they contribute.
func Fields(t reflect.Type) []Field {
	if t.Kind() != reflect.Struct {
		return nil
	}
	var out []Field
	collectFields(t, &out)
	return out
}

func collectFields(t reflect.Type, out *[]Field) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			embedded := f.Type
			if embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				collectFields(embedded, out)
			}
			continue
		}
		*out = append(*out, Field{Name: f.Name, Type: f.Type, Declaring: t})
	}
}

// Methods enumerates the exported methods of the type's pointer method set,
// which includes both value and pointer receivers.
func Methods(t reflect.Type) []Method {
	pt := t
	if pt.Kind() != reflect.Pointer {
		pt = reflect.PointerTo(t)
	}
	out := make([]Method, 0, pt.NumMethod())
	for i := 0; i < pt.NumMethod(); i++ {
		out = append(out, Method{Method: pt.Method(i), Receiver: pt})
	}
	return out
}

// Signature renders the method the way exclusion patterns and failure
// messages see it, e.g. "func (*models.User) SetName(string)".
func (m Method) Signature() string {
	var in []string
	// Input 0 is the receiver.
	for i := 1; i < m.Type.NumIn(); i++ {
		in = append(in, m.Type.In(i).String())
	}
	var outs []string
	for i := 0; i < m.Type.NumOut(); i++ {
		outs = append(outs, m.Type.Out(i).String())
	}
	sig := fmt.Sprintf("func (%s) %s(%s)", m.Receiver, m.Name, strings.Join(in, ", "))
	switch len(outs) {
	case 0:
	case 1:
		sig += " " + outs[0]
	default:
		sig += " (" + strings.Join(outs, ", ") + ")"
	}
	return sig
}

// NumParams returns the parameter count excluding the receiver.
func (m Method) NumParams() int {
	return m.Type.NumIn() - 1
}

// Param returns the i-th parameter type, excluding the receiver.
func (m Method) Param(i int) reflect.Type {
	return m.Type.In(i + 1)
}

// ConstructorSignature renders a registered constructor function for
// exclusion matching and failure messages, using its runtime symbol name.
func ConstructorSignature(fn reflect.Value) string {
	name := "constructor"
	if rf := runtime.FuncForPC(fn.Pointer()); rf != nil {
		name = rf.Name()
		if idx := strings.LastIndex(name, "/"); idx >= 0 {
			name = name[idx+1:]
		}
	}
	return fmt.Sprintf("%s %s", name, fn.Type())
}

// Excluded reports whether a member signature contains any of the literal
// exclusion patterns.
func Excluded(signature string, patterns []string) bool {
	for _, p := range patterns {
		if p != "" && strings.Contains(signature, p) {
			return true
		}
	}
	return false
}

// IsEnum reports whether the type is an enum in the Go idiom: a defined
// non-struct basic kind, typically a named integer with constant values.
func IsEnum(t reflect.Type) bool {
	if t.PkgPath() == "" || t.Name() == "" {
		return false
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.String:
		return true
	default:
		return false
	}
}

// Instantiable reports whether the checkers can build instances of the type:
// concrete struct kinds only. Interfaces (covering the abstract case) and
// enum kinds are skipped by checks that require instantiation.
func Instantiable(t reflect.Type) bool {
	return t.Kind() == reflect.Struct
}
