package pojocheck

import (
	"reflect"

	"github.com/dbsmedya/pojocheck/checkerr"
	"github.com/dbsmedya/pojocheck/internal/member"
	"github.com/dbsmedya/pojocheck/report"
)

var stringType = reflect.TypeOf("")

// CheckToString verifies that String is deterministic: invoked twice on the
// same unmutated instance it must return identical output. With
// WithCrossInstanceStringCheck enabled, two independently synthesized
// instances must additionally render different output. Enum kinds are
// skipped.
func (s *Suite) CheckToString() error {
	return s.forEachClass(s.checkToString)
}

func (s *Suite) checkToString(t reflect.Type, _ []reflect.Value) error {
	if member.IsEnum(t) {
		s.log.Debugf("Skipping enum type: %s", t)
		return nil
	}
	if !member.Instantiable(t) {
		s.log.Debugf("Skipping non-instantiable type: %s", t)
		return nil
	}
	s.log.Debugf("Running String check for: %s", t)

	instance, err := s.syn.NewInstance(t)
	if err != nil {
		return err
	}

	for _, m := range member.Methods(t) {
		if !isStringMethod(m) {
			continue
		}
		if !s.methodAllowed(m.Method) || member.Excluded(m.Signature(), s.exclude.methods) {
			continue
		}
		s.record(report.ToString, t, "Method: %s", m.Signature())

		first, err := s.callString(m, instance)
		if err != nil {
			return err
		}
		repeat, err := s.callString(m, instance)
		if err != nil {
			return err
		}
		if first != repeat {
			return &checkerr.ToStringError{Method: m.Signature(), Message: checkerr.MsgToStringStable}
		}

		if s.crossString {
			other, err := s.syn.NewInstance(t)
			if err != nil {
				return err
			}
			second, err := s.callString(m, other)
			if err != nil {
				return err
			}
			if first == second {
				return &checkerr.ToStringError{Method: m.Signature(), Message: checkerr.MsgToStringDistinct}
			}
		}
	}
	return nil
}

func isStringMethod(m member.Method) bool {
	return m.Name == "String" &&
		m.NumParams() == 0 &&
		m.Type.NumOut() == 1 &&
		m.Type.Out(0) == stringType
}

func (s *Suite) callString(m member.Method, instance reflect.Value) (string, error) {
	results, err := safeCall(m.Func, []reflect.Value{instance})
	if err != nil {
		return "", &checkerr.InvocationError{Member: m.Signature(), Cause: err}
	}
	return results[0].String(), nil
}
