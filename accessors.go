package pojocheck

import (
	"reflect"

	"github.com/dbsmedya/pojocheck/checkerr"
	"github.com/dbsmedya/pojocheck/internal/accessor"
	"github.com/dbsmedya/pojocheck/internal/member"
	"github.com/dbsmedya/pojocheck/report"
)

// CheckSettersGetters verifies, for every field with a discoverable
// mutator/accessor pair, that the value passed to the mutator comes back
// unchanged from the accessor. Fields missing either half of the pair are
// skipped silently: not every field is expected to be exposed.
func (s *Suite) CheckSettersGetters() error {
	return s.forEachClass(s.checkSettersGetters)
}

func (s *Suite) checkSettersGetters(t reflect.Type, _ []reflect.Value) error {
	if !member.Instantiable(t) {
		s.log.Debugf("Skipping non-instantiable type: %s", t)
		return nil
	}
	s.log.Debugf("Running setter/getter check for: %s", t)

	instance, err := s.syn.NewInstance(t)
	if err != nil {
		return err
	}
	methods := member.Methods(t)

	for _, field := range member.Fields(t) {
		mutator, ok := accessor.FindMutator(methods, field)
		if !ok {
			continue
		}
		getter, ok := accessor.FindAccessor(methods, field)
		if !ok {
			continue
		}
		if member.Excluded(mutator.Signature(), s.exclude.methods) ||
			member.Excluded(getter.Signature(), s.exclude.methods) {
			s.log.Debugf("Skipping excluded accessor pair for field: %s", field.Name)
			continue
		}
		if !s.methodAllowed(mutator.Method) || !s.methodAllowed(getter.Method) {
			continue
		}

		s.record(report.SetterGetter, t, "Using setter method: %s", mutator.Signature())
		s.record(report.SetterGetter, t, "Using getter method: %s", getter.Signature())

		value, err := s.syn.CreateFor(mutator.Signature(), field.Type)
		if err != nil {
			return err
		}
		s.record(report.SetterGetter, t, "\tUsing value: %v", value.Interface())

		if _, err := safeCall(mutator.Func, []reflect.Value{instance, value}); err != nil {
			return &checkerr.InvocationError{Member: mutator.Signature(), Cause: err}
		}
		results, err := safeCall(getter.Func, []reflect.Value{instance})
		if err != nil {
			return &checkerr.InvocationError{Member: getter.Signature(), Cause: err}
		}
		result := results[0]
		s.record(report.SetterGetter, t, "\tGetter result value: %v", result.Interface())

		if isNil(result) || !accessor.Equal(value, result) {
			return &checkerr.AccessorError{
				Mutator:  mutator.Signature(),
				Accessor: getter.Signature(),
				Expected: value.Interface(),
				Actual:   result.Interface(),
			}
		}
	}
	return nil
}

// isNil reports whether a result value is nil for kinds that have a nil.
func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
