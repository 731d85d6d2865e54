// Package accessor locates mutator/accessor method pairs for fields by
// naming-convention search. Name matching is case-insensitive so exported
// methods pair with unexported fields; type matching is exact, with no
// widening or conversion.
package accessor

import (
	"reflect"
	"strings"

	"github.com/dbsmedya/pojocheck/internal/member"
)

// FindMutator searches for a single-argument method taking exactly the field
// type. Candidates are tried in order, first match wins:
// Set<field>, Set_<field>, <field>.
func FindMutator(methods []member.Method, f member.Field) (member.Method, bool) {
	for _, name := range []string{"set" + f.Name, "set_" + f.Name, f.Name} {
		for _, m := range methods {
			if strings.EqualFold(m.Name, name) &&
				m.NumParams() == 1 &&
				m.Param(0) == f.Type {
				return m, true
			}
		}
	}
	return member.Method{}, false
}

// FindAccessor searches for a zero-argument method returning exactly the
// field type. Candidates are tried in order, first match wins:
// Get<field>, Get_<field>, Is<field>, <field>.
func FindAccessor(methods []member.Method, f member.Field) (member.Method, bool) {
	for _, name := range []string{"get" + f.Name, "get_" + f.Name, "is" + f.Name, f.Name} {
		for _, m := range methods {
			if strings.EqualFold(m.Name, name) &&
				m.NumParams() == 0 &&
				m.Type.NumOut() == 1 &&
				m.Type.Out(0) == f.Type {
				return m, true
			}
		}
	}
	return member.Method{}, false
}

// Equal compares a synthesized value with an accessor result the way the
// round-trip contract defines equality.
func Equal(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return false
	}
	return reflect.DeepEqual(a.Interface(), b.Interface())
}
